// Package recordjson decodes and encodes service records in the admin
// content service's JSON wire format.
//
// Decoding is tolerant: every field is read on its own, and a field with
// an unexpected JSON type becomes absent instead of failing the record.
// Blank strings and the [""] feature sentinel are normalised here, so the
// rest of the application only ever sees explicit absence.
package recordjson
