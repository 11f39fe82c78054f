package validators

import "go.mongodb.org/mongo-driver/bson"

// AssetValidator documents the asset shape. additionalProperties stays
// true and only the original fields are required, so records written
// before a field existed still load with zero-value defaults.
var AssetValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"category",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"category": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 50,
			},

			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 255,
			},

			"color": bson.M{
				"bsonType": "string",
			},

			"icon": bson.M{
				"bsonType": "string",
			},

			"is_out_of_service": bson.M{
				"bsonType": "bool",
			},

			"sort_order": bson.M{
				"bsonType": "int",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
