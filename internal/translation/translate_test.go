package translation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-generator/internal/cv"
)

type fakeClient struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func encodeDoc(t *testing.T, doc cv.Document) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func TestTranslateSuccess(t *testing.T) {
	src := cv.DefaultDocument()
	src.PersonalDetails.Photo = "data:image/png;base64,AAAA"

	translated := src.Clone()
	translated.Summary = "Ringkasan yang diterjemahkan"
	translated.PersonalDetails.Address = "San Francisco, CA (terjemahan)"

	client := &fakeClient{response: encodeDoc(t, translated)}
	got, err := New(client).Translate(context.Background(), src, "Malay")
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "Ringkasan yang diterjemahkan", got.Summary)
	assert.Equal(t, "San Francisco, CA (terjemahan)", got.PersonalDetails.Address)
}

func TestTranslatePromptContents(t *testing.T) {
	src := cv.DefaultDocument()
	client := &fakeClient{response: encodeDoc(t, src)}

	_, err := New(client).Translate(context.Background(), src, "Tamil")
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "from English to Tamil")
	assert.Contains(t, client.lastPrompt, "Do not translate keys, IDs, dates, email, phone, linkedin, or URLs")
	assert.Contains(t, client.lastPrompt, "Jane Doe")
}

func TestTranslateClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}

	_, err := New(client).Translate(context.Background(), cv.DefaultDocument(), "Malay")
	var te *TranslationError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestTranslateUnparseableResponse(t *testing.T) {
	client := &fakeClient{response: "sorry, I cannot translate that"}

	_, err := New(client).Translate(context.Background(), cv.DefaultDocument(), "Malay")
	var te *TranslationError
	assert.ErrorAs(t, err, &te)
}

func TestTranslateMissingSectionIsFailure(t *testing.T) {
	src := cv.DefaultDocument()

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(encodeDoc(t, src)), &m))
	delete(m, "skills")
	data, err := json.Marshal(m)
	require.NoError(t, err)

	client := &fakeClient{response: string(data)}
	_, err = New(client).Translate(context.Background(), src, "Malay")
	var te *TranslationError
	assert.ErrorAs(t, err, &te)
}

func TestTranslateDroppedItemIsFailure(t *testing.T) {
	src := cv.DefaultDocument()
	mangled := src.Clone()
	mangled.Skills = mangled.Skills[:len(mangled.Skills)-1]

	client := &fakeClient{response: encodeDoc(t, mangled)}
	_, err := New(client).Translate(context.Background(), src, "Malay")
	var te *TranslationError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, err.Error(), "skills")
}

func TestTranslateChangedIDIsFailure(t *testing.T) {
	src := cv.DefaultDocument()
	mangled := src.Clone()
	mangled.Education[0].ID = 42

	client := &fakeClient{response: encodeDoc(t, mangled)}
	_, err := New(client).Translate(context.Background(), src, "Malay")
	var te *TranslationError
	assert.ErrorAs(t, err, &te)
}

func TestTranslateRestoresVerbatimFields(t *testing.T) {
	src := cv.DefaultDocument()
	src.PersonalDetails.Photo = "data:image/png;base64,AAAA"

	mangled := src.Clone()
	mangled.PersonalDetails.Email = "translated@example.com"
	mangled.PersonalDetails.Photo = ""
	mangled.WorkExperience[0].StartDate = "01 Januari 2020"
	mangled.AcademicWritings[0].DOI = "doi-terjemahan"
	mangled.ConferencePresentations[0].Role = "penyampai"

	client := &fakeClient{response: encodeDoc(t, mangled)}
	got, err := New(client).Translate(context.Background(), src, "Malay")
	require.NoError(t, err)

	assert.Equal(t, src.PersonalDetails.Email, got.PersonalDetails.Email)
	assert.Equal(t, src.PersonalDetails.Photo, got.PersonalDetails.Photo)
	assert.Equal(t, src.WorkExperience[0].StartDate, got.WorkExperience[0].StartDate)
	assert.Equal(t, src.AcademicWritings[0].DOI, got.AcademicWritings[0].DOI)
	assert.Equal(t, cv.RolePresenter, got.ConferencePresentations[0].Role)
}

func TestTranslateDoesNotMutateSource(t *testing.T) {
	src := cv.DefaultDocument()
	snapshot := src.Clone()

	translated := src.Clone()
	translated.Summary = "changed"
	client := &fakeClient{response: encodeDoc(t, translated)}

	_, err := New(client).Translate(context.Background(), src, "Malay")
	require.NoError(t, err)
	assert.Equal(t, snapshot, src)
}
