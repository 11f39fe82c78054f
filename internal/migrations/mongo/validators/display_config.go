package validators

import "go.mongodb.org/mongo-driver/bson"

var DisplayConfigValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"header_text",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"header_text": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"category_icons": bson.M{
				"bsonType": "object",
			},

			"placeholder_title": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"placeholder_name": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"placeholder_email": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},
		},
	},
}
