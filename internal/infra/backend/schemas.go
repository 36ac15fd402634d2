package backend

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Response schemas check the structure of success bodies before they are decoded.
// Required fields must be present with the right primitive type. Optional fields
// may be absent or null. Unknown fields are allowed.

func object(required []string, props map[string]*openapi3.Schema) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for name, prop := range props {
		schema = schema.WithProperty(name, prop)
	}
	schema.Required = required

	return schema
}

func arrayOf(items *openapi3.Schema) *openapi3.Schema {
	return openapi3.NewArraySchema().WithItems(items)
}

func optString() *openapi3.Schema { return openapi3.NewStringSchema().WithNullable() }

func optNumber() *openapi3.Schema { return openapi3.NewFloat64Schema().WithNullable() }

func optInteger() *openapi3.Schema { return openapi3.NewIntegerSchema().WithNullable() }

func roleSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().
		WithEnum("user", "globalApplicationAdmin", "defaultGlobalApplicationAdmin").
		WithNullable()
}

func sectionSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithEnum("ForSale", "Wanted", "Exchange")
}

func locationSchema() *openapi3.Schema {
	return object([]string{"country"}, map[string]*openapi3.Schema{
		"streetNumber": optString(),
		"streetName":   optString(),
		"district":     optString(),
		"city":         optString(),
		"region":       optString(),
		"country":      openapi3.NewStringSchema(),
		"postcode":     optString(),
	})
}

// userProps are the fields shared by every user shape. businessesAdministered is
// added by userSchema only, so a business's administrator list stays one level deep.
func userProps() map[string]*openapi3.Schema {
	return map[string]*openapi3.Schema{
		"id":          openapi3.NewIntegerSchema(),
		"firstName":   openapi3.NewStringSchema(),
		"lastName":    openapi3.NewStringSchema(),
		"middleName":  optString(),
		"nickname":    optString(),
		"bio":         optString(),
		"email":       openapi3.NewStringSchema(),
		"dateOfBirth": optString(),
		"phoneNumber": optString(),
		"homeAddress": locationSchema(),
		"created":     optString(),
		"role":        roleSchema(),
	}
}

var userRequired = []string{"id", "firstName", "lastName", "email", "homeAddress"}

func shallowUserSchema() *openapi3.Schema {
	return object(userRequired, userProps())
}

func businessSchema(administrator *openapi3.Schema) *openapi3.Schema {
	return object([]string{"id", "primaryAdministratorId", "name", "address", "businessType"}, map[string]*openapi3.Schema{
		"id":                     openapi3.NewIntegerSchema(),
		"primaryAdministratorId": openapi3.NewIntegerSchema(),
		"administrators":         arrayOf(administrator).WithNullable(),
		"name":                   openapi3.NewStringSchema(),
		"description":            optString(),
		"address":                locationSchema(),
		"businessType": openapi3.NewStringSchema().WithEnum(
			"Accommodation and Food Services",
			"Retail Trade",
			"Charitable organisation",
			"Non-profit organisation",
		),
		"created": optString(),
	})
}

func userSchema() *openapi3.Schema {
	props := userProps()
	props["businessesAdministered"] = arrayOf(businessSchema(shallowUserSchema())).WithNullable()

	return object(userRequired, props)
}

func imageSchema() *openapi3.Schema {
	return object([]string{"id", "filename", "thumbnailFilename"}, map[string]*openapi3.Schema{
		"id":                openapi3.NewIntegerSchema(),
		"filename":          openapi3.NewStringSchema(),
		"thumbnailFilename": openapi3.NewStringSchema(),
	})
}

func productSchema() *openapi3.Schema {
	return object([]string{"id", "name", "images"}, map[string]*openapi3.Schema{
		"id":                     openapi3.NewStringSchema(),
		"name":                   openapi3.NewStringSchema(),
		"description":            optString(),
		"manufacturer":           optString(),
		"recommendedRetailPrice": optNumber(),
		"created":                optString(),
		"images":                 arrayOf(imageSchema()),
		"countryOfSale":          optString(),
	})
}

func inventoryItemSchema() *openapi3.Schema {
	return object([]string{"id", "product", "quantity", "remainingQuantity", "expires"}, map[string]*openapi3.Schema{
		"id":                openapi3.NewIntegerSchema(),
		"product":           productSchema(),
		"quantity":          openapi3.NewIntegerSchema(),
		"remainingQuantity": openapi3.NewIntegerSchema(),
		"pricePerItem":      optNumber(),
		"totalPrice":        optNumber(),
		"manufactured":      optString(),
		"sellBy":            optString(),
		"bestBefore":        optString(),
		"expires":           openapi3.NewStringSchema(),
	})
}

func saleSchema() *openapi3.Schema {
	return object([]string{"id", "inventoryItem", "quantity", "price", "created"}, map[string]*openapi3.Schema{
		"id":            openapi3.NewIntegerSchema(),
		"inventoryItem": inventoryItemSchema(),
		"quantity":      openapi3.NewIntegerSchema(),
		"price":         openapi3.NewFloat64Schema(),
		"moreInfo":      optString(),
		"created":       openapi3.NewStringSchema(),
		"closes":        optString(),
	})
}

func keywordSchema() *openapi3.Schema {
	return object([]string{"id", "name", "created"}, map[string]*openapi3.Schema{
		"id":      openapi3.NewIntegerSchema(),
		"name":    openapi3.NewStringSchema(),
		"created": openapi3.NewStringSchema(),
	})
}

func cardSchema() *openapi3.Schema {
	return object([]string{"id", "creator", "section", "created", "title", "keywords"}, map[string]*openapi3.Schema{
		"id":               openapi3.NewIntegerSchema(),
		"creator":          shallowUserSchema(),
		"section":          sectionSchema(),
		"created":          openapi3.NewStringSchema(),
		"displayPeriodEnd": optString(),
		"title":            openapi3.NewStringSchema(),
		"description":      optString(),
		"keywords":         arrayOf(keywordSchema()),
	})
}

func integerField(field string) *openapi3.Schema {
	return object([]string{field}, map[string]*openapi3.Schema{field: openapi3.NewIntegerSchema()})
}

func optionalIntegerField(field string) *openapi3.Schema {
	return object(nil, map[string]*openapi3.Schema{field: optInteger()})
}

//nolint:gochecknoglobals
var (
	schemaUser          = userSchema()
	schemaUsers         = arrayOf(userSchema())
	schemaBusiness      = businessSchema(shallowUserSchema())
	schemaProducts      = arrayOf(productSchema())
	schemaInventory     = arrayOf(inventoryItemSchema())
	schemaSales         = arrayOf(saleSchema())
	schemaKeywords      = arrayOf(keywordSchema())
	schemaCards         = arrayOf(cardSchema())
	schemaCount         = integerField("count")
	schemaLogin         = integerField("userId")
	schemaCardCreated   = integerField("cardId")
	schemaInventoryMade = optionalIntegerField("inventoryItemId")
	schemaListingMade   = optionalIntegerField("listingId")
)
