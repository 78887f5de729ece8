package errors

import (
	"sort"
	"strings"
)

// Metadata keys set by the kind constructors
const (
	MetaRaw          = "raw"
	MetaField        = "field"
	MetaFailedFields = "failed_fields"
	MetaManualPrompt = "manual_prompt"
	MetaRecordID     = "record_id"
	MetaOperation    = "operation"
)

// MalformedGenerationResult reports a completion that could not be turned into
// the required field set. The raw completion is kept so it can be shown as-is.
func MalformedGenerationResult(raw string, cause error) *Error {
	return &Error{
		Code:    KindMalformedGenerationResult.Code(),
		Kind:    KindMalformedGenerationResult,
		Message: "generation result could not be parsed",
		Cause:   cause,
		Meta:    map[string]interface{}{MetaRaw: raw},
	}
}

// NoSourceText reports a translation request for a field that has no text in
// the source language.
func NoSourceText(field, lang string) *Error {
	return &Error{
		Code:    KindNoSourceText.Code(),
		Kind:    KindNoSourceText,
		Message: "field " + field + " has no text in language " + lang,
		Meta:    map[string]interface{}{MetaField: field, "language": lang},
	}
}

// BillingRequired reports an image request refused because the account is not
// billed. manualPrompt is the prompt the DM can paste into another tool.
func BillingRequired(manualPrompt string, cause error) *Error {
	return &Error{
		Code:    KindBillingRequired.Code(),
		Kind:    KindBillingRequired,
		Message: "image generation requires a billed account",
		Cause:   cause,
		Meta:    map[string]interface{}{MetaManualPrompt: manualPrompt},
	}
}

// StorageUnavailable wraps a backend failure.
func StorageUnavailable(cause error, operation string) *Error {
	return &Error{
		Code:    KindStorageUnavailable.Code(),
		Kind:    KindStorageUnavailable,
		Message: "storage unavailable",
		Cause:   cause,
		Meta:    map[string]interface{}{MetaOperation: operation},
	}
}

// PartialTranslationFailure reports the fields that failed to translate,
// keyed by field name with the failure message as value.
func PartialTranslationFailure(failed map[string]string) *Error {
	names := make([]string, 0, len(failed))
	for name := range failed {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Error{
		Code:    KindPartialTranslationFailure.Code(),
		Kind:    KindPartialTranslationFailure,
		Message: "translation failed for fields: " + strings.Join(names, ", "),
		Meta: map[string]interface{}{
			MetaFailedFields: names,
			"field_errors":   failed,
		},
	}
}

// GenerationInProgress rejects a second long-running action on a record that
// already has one in flight.
func GenerationInProgress(recordID string) *Error {
	return &Error{
		Code:    KindGenerationInProgress.Code(),
		Kind:    KindGenerationInProgress,
		Message: "another generation is already running for " + recordID,
		Meta:    map[string]interface{}{MetaRecordID: recordID},
	}
}

// GetKind extracts the kind from an error, empty if none
func GetKind(err error) Kind {
	var customErr *Error
	if As(err, &customErr) {
		return customErr.Kind
	}
	return ""
}

// IsMalformedGenerationResult checks the error kind
func IsMalformedGenerationResult(err error) bool {
	return GetKind(err) == KindMalformedGenerationResult
}

// IsNoSourceText checks the error kind
func IsNoSourceText(err error) bool {
	return GetKind(err) == KindNoSourceText
}

// IsBillingRequired checks the error kind
func IsBillingRequired(err error) bool {
	return GetKind(err) == KindBillingRequired
}

// IsStorageUnavailable checks the error kind
func IsStorageUnavailable(err error) bool {
	return GetKind(err) == KindStorageUnavailable
}

// IsPartialTranslationFailure checks the error kind
func IsPartialTranslationFailure(err error) bool {
	return GetKind(err) == KindPartialTranslationFailure
}

// IsGenerationInProgress checks the error kind
func IsGenerationInProgress(err error) bool {
	return GetKind(err) == KindGenerationInProgress
}

// FailedFields returns the field names carried by a partial translation failure
func FailedFields(err error) []string {
	meta := GetMeta(err)
	if meta == nil {
		return nil
	}
	names, _ := meta[MetaFailedFields].([]string)
	return names
}
