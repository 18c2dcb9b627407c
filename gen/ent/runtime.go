// Code generated by ent, DO NOT EDIT.

package ent

import (
	"docvault/db/ent/schema"
	"docvault/gen/ent/document"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescContentType is the schema descriptor for content_type field.
	documentDescContentType := documentFields[2].Descriptor()
	// document.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	document.ContentTypeValidator = documentDescContentType.Validators[0].(func(string) error)
	// documentDescSize is the schema descriptor for size field.
	documentDescSize := documentFields[3].Descriptor()
	// document.SizeValidator is a validator for the "size" field. It is called by the builders before save.
	document.SizeValidator = documentDescSize.Validators[0].(func(int64) error)
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[4].Descriptor()
	// document.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	document.DocumentTypeValidator = func() func(string) error {
		validators := documentDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescChannel is the schema descriptor for channel field.
	documentDescChannel := documentFields[5].Descriptor()
	// document.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	document.ChannelValidator = func() func(string) error {
		validators := documentDescChannel.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(channel string) error {
			for _, fn := range fns {
				if err := fn(channel); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[6].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[11].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
}
