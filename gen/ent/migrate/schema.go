// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "size", Type: field.TypeInt64},
		{Name: "document_type", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "RECEIVED"},
		{Name: "file_url", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "customer_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8]},
			},
			{
				Name:    "document_customer_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[9]},
			},
			{
				Name:    "document_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
}
