package validator

import "go.mongodb.org/mongo-driver/v2/bson"

// ValidObjectID validates that value is a 24-digit hexadecimal document identifier.
// Both lower and upper case digits are accepted.
func ValidObjectID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := bson.ObjectIDFromHex(value)
			return err == nil
		},
		Error: constraint(field, "Invalid MongoDB ID", "validation.object_id", nil),
	}
}
