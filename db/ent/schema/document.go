package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"docvault/constants"
	"docvault/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Int64("size").Positive(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("channel").NotEmpty().
			Validate(utils.EnumValidator(constants.Channels...)),
		field.String("status").
			Default(string(constants.StatusReceived)).
			Validate(utils.EnumValidator(constants.Statuses...)),
		// set only when processing succeeds
		field.String("file_url").Optional().Nillable(),
		field.String("correlation_id").Optional().Nillable(),
		field.UUID("customer_id", uuid.UUID{}),
		field.UUID("user_id", uuid.UUID{}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("correlation_id"),
		index.Fields("customer_id"),
		index.Fields("user_id", "created_at"),
	}
}
