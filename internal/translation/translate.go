package translation

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"cv-generator/internal/cv"
	"cv-generator/internal/llm"
)

//go:embed schema.json
var documentSchema []byte

// Translator translates a document snapshot into a target language through
// a generative-language client. The returned document always has the same
// shape as the source: same collections, same item counts, same identifiers
// in the same order. Identifier, date, contact and URL-like fields are
// restored byte-for-byte from the source after translation.
type Translator struct {
	client llm.Client
}

// New creates a Translator backed by client.
func New(client llm.Client) *Translator {
	return &Translator{client: client}
}

// Translate returns a translated copy of doc. Any collaborator error,
// unparseable response, or shape mismatch yields a TranslationError and no
// document.
func (t *Translator) Translate(ctx context.Context, doc cv.Document, language string) (cv.Document, error) {
	prompt, err := buildPrompt(doc, language)
	if err != nil {
		return cv.Document{}, &TranslationError{Message: "failed to encode document", Cause: err}
	}

	raw, err := t.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return cv.Document{}, &TranslationError{Message: "translation request failed", Cause: err}
	}

	translated, err := decodeResponse(raw)
	if err != nil {
		return cv.Document{}, err
	}

	if err := verifyShape(doc, translated); err != nil {
		return cv.Document{}, err
	}

	restoreVerbatimFields(doc, &translated)
	return translated, nil
}

// buildPrompt constructs the translation instruction around the serialized
// document.
func buildPrompt(doc cv.Document, language string) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Translate the following CV data JSON object from English to %s. ", language)
	sb.WriteString("Maintain the exact JSON structure and keys. Only translate the string values for fields like ")
	sb.WriteString("fullName, jobTitle, address, summary, descriptions, institutions, degrees, skills, titles, ")
	sb.WriteString("journals, conference names, locations, roles, publishers, programme names, and organisations. ")
	sb.WriteString("Do not translate keys, IDs, dates, email, phone, linkedin, or URLs. ")
	sb.WriteString("Respond with only the translated JSON object, without any additional text, explanation, or markdown formatting.\n\n")
	sb.Write(payload)
	return sb.String(), nil
}

// decodeResponse validates the raw response against the document schema and
// unmarshals it.
func decodeResponse(raw string) (cv.Document, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(documentSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return cv.Document{}, &TranslationError{Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return cv.Document{}, &TranslationError{
			Message: "response does not match the document schema: " + strings.Join(details, "; "),
		}
	}

	var doc cv.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return cv.Document{}, &TranslationError{Message: "failed to decode response", Cause: err}
	}
	return doc, nil
}

// verifyShape checks that the translated document carries exactly the
// source's collections: same lengths, same identifiers, same order.
func verifyShape(src, got cv.Document) error {
	for _, name := range cv.CollectionNames() {
		srcIDs, _ := src.ItemIDs(name)
		gotIDs, _ := got.ItemIDs(name)
		if len(srcIDs) != len(gotIDs) {
			return &TranslationError{
				Message: fmt.Sprintf("collection %s has %d items, expected %d", name, len(gotIDs), len(srcIDs)),
			}
		}
		for i := range srcIDs {
			if srcIDs[i] != gotIDs[i] {
				return &TranslationError{
					Message: fmt.Sprintf("collection %s item %d has id %d, expected %d", name, i, gotIDs[i], srcIDs[i]),
				}
			}
		}
	}
	return nil
}

// restoreVerbatimFields copies the fields the collaborator must preserve
// byte-for-byte back from the source. Shape has already been verified, so
// index-wise access is safe.
func restoreVerbatimFields(src cv.Document, got *cv.Document) {
	got.PersonalDetails.Email = src.PersonalDetails.Email
	got.PersonalDetails.Phone = src.PersonalDetails.Phone
	got.PersonalDetails.LinkedIn = src.PersonalDetails.LinkedIn
	got.PersonalDetails.Photo = src.PersonalDetails.Photo

	for i := range got.WorkExperience {
		got.WorkExperience[i].StartDate = src.WorkExperience[i].StartDate
		got.WorkExperience[i].EndDate = src.WorkExperience[i].EndDate
	}
	for i := range got.Education {
		got.Education[i].StartDate = src.Education[i].StartDate
		got.Education[i].EndDate = src.Education[i].EndDate
	}
	for i := range got.AcademicWritings {
		got.AcademicWritings[i].Year = src.AcademicWritings[i].Year
		got.AcademicWritings[i].DOI = src.AcademicWritings[i].DOI
	}
	for i := range got.ConferencePresentations {
		got.ConferencePresentations[i].Date = src.ConferencePresentations[i].Date
		got.ConferencePresentations[i].Role = src.ConferencePresentations[i].Role
	}
	for i := range got.BookPublishings {
		got.BookPublishings[i].Year = src.BookPublishings[i].Year
		got.BookPublishings[i].ISBN = src.BookPublishings[i].ISBN
	}
	for i := range got.ProgrammesOrganised {
		got.ProgrammesOrganised[i].Date = src.ProgrammesOrganised[i].Date
	}
}
