package errorutil

import "errors"

// FriendlyField names a unique field together with the message shown when it collides.
type FriendlyField struct {
	Field   string
	Message string
}

// Translator applies the storage-failure triage for one resource. Only the resource name
// and the ordered list of friendly unique fields vary between resources.
type Translator struct {
	Resource     string
	UniqueFields []FriendlyField
}

// Translate converts err into the client-facing taxonomy. DomainErrors pass through.
func (t Translator) Translate(err error) *DomainError {
	if err == nil {
		return nil
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	var unique *UniquenessViolation
	if errors.As(err, &unique) {
		for _, f := range t.UniqueFields {
			if f.Field == unique.Field {
				return NewConflict(f.Message, map[string]any{"field": f.Field})
			}
		}
		details := map[string]any{}
		if unique.Field != "" {
			details["field"] = unique.Field
		}
		return NewConflict("Duplicate key error", details)
	}

	var schema *SchemaViolation
	if errors.As(err, &schema) {
		return NewValidationError("Validation error", schema.Fields)
	}

	if errors.Is(err, ErrNotFound) {
		return NewNotFound(t.resource())
	}

	return NewInternalError(err)
}

func (t Translator) resource() string {
	if t.Resource == "" {
		return "resource"
	}
	return t.Resource
}
