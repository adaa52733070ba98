package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-generator/internal/cv"
	"cv-generator/internal/translation"
)

type fakeTranslator struct {
	calls  int
	result cv.Document
	err    error
	block  chan struct{}
}

func (f *fakeTranslator) Translate(_ context.Context, _ cv.Document, _ string) (cv.Document, error) {
	f.calls++
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return cv.Document{}, f.err
	}
	return f.result, nil
}

type fakeRenderer struct {
	lastDoc cv.Document
	err     error
}

func (f *fakeRenderer) Render(doc cv.Document) (string, error) {
	f.lastDoc = doc
	if f.err != nil {
		return "", f.err
	}
	return "<html><body>cv</body></html>", nil
}

type fakeRasterizer struct {
	err error
}

func (f *fakeRasterizer) Capture(_ context.Context, _ string, _ float64) (*Capture, error) {
	if f.err != nil {
		return nil, f.err
	}
	return testCapture(), nil
}

// testCapture builds a small real PNG so PDF encoding exercises the actual
// image registration path.
func testCapture() *Capture {
	img := image.NewRGBA(image.Rect(0, 0, 8, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return &Capture{PNG: buf.Bytes(), Width: 8, Height: 12}
}

func TestExportEnglishSkipsTranslation(t *testing.T) {
	translator := &fakeTranslator{}
	o := NewOrchestrator(translator, &fakeRenderer{}, &fakeRasterizer{})

	doc := cv.DefaultDocument()
	doc, _, err := doc.WithAppended(cv.CollectionSkills, 100)
	require.NoError(t, err)
	doc, err = doc.WithItemField(cv.CollectionSkills, len(doc.Skills)-1, "name", "Go")
	require.NoError(t, err)

	result, err := o.Export(context.Background(), doc, SourceLanguage)
	require.NoError(t, err)

	assert.Equal(t, 0, translator.calls, "English export must not invoke the translator")
	assert.Equal(t, "Jane Doe_CV.pdf", result.Filename)
	assert.True(t, bytes.HasPrefix(result.PDF, []byte("%PDF")))
}

func TestExportTranslatedCarriesOverPhoto(t *testing.T) {
	live := cv.DefaultDocument()
	live.PersonalDetails.Photo = "data:image/png;base64,LIVEPHOTO"

	// The collaborator returns a snapshot with the photo mangled.
	mangled := live.Clone()
	mangled.PersonalDetails.Photo = "data:image/png;base64,BOGUS"
	mangled.Summary = "translated"

	renderer := &fakeRenderer{}
	o := NewOrchestrator(&fakeTranslator{result: mangled}, renderer, &fakeRasterizer{})

	_, err := o.Export(context.Background(), live, "Malay")
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,LIVEPHOTO", renderer.lastDoc.PersonalDetails.Photo)
	assert.Equal(t, "translated", renderer.lastDoc.Summary)
	assert.Equal(t, "data:image/png;base64,LIVEPHOTO", live.PersonalDetails.Photo)
}

func TestExportRejectsConcurrentAttempt(t *testing.T) {
	translator := &fakeTranslator{result: cv.DefaultDocument(), block: make(chan struct{})}
	o := NewOrchestrator(translator, &fakeRenderer{}, &fakeRasterizer{})

	done := make(chan error, 1)
	go func() {
		_, err := o.Export(context.Background(), cv.DefaultDocument(), "Malay")
		done <- err
	}()

	require.Eventually(t, func() bool {
		return o.Phase() == PhaseTranslating
	}, time.Second, 5*time.Millisecond)

	_, err := o.Export(context.Background(), cv.DefaultDocument(), SourceLanguage)
	assert.ErrorIs(t, err, ErrExportInFlight)

	close(translator.block)
	require.NoError(t, <-done)

	// The flag is cleared after completion; a new attempt goes through.
	_, err = o.Export(context.Background(), cv.DefaultDocument(), SourceLanguage)
	assert.NoError(t, err)
	assert.Equal(t, PhaseIdle, o.Phase())
}

func TestExportTranslationFailureIsTerminal(t *testing.T) {
	translator := &fakeTranslator{err: &translation.TranslationError{Message: "service unavailable"}}
	o := NewOrchestrator(translator, &fakeRenderer{}, &fakeRasterizer{})

	_, err := o.Export(context.Background(), cv.DefaultDocument(), "Tamil")
	var te *translation.TranslationError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, PhaseIdle, o.Phase())

	// The failed attempt cleared the in-flight flag.
	_, err = o.Export(context.Background(), cv.DefaultDocument(), SourceLanguage)
	assert.NoError(t, err)
}

func TestExportCaptureFailure(t *testing.T) {
	o := NewOrchestrator(nil, &fakeRenderer{}, &fakeRasterizer{err: &EncodingError{Message: "browser crashed"}})

	_, err := o.Export(context.Background(), cv.DefaultDocument(), SourceLanguage)
	var ee *EncodingError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, PhaseIdle, o.Phase())
}

func TestExportWithoutRenderer(t *testing.T) {
	o := NewOrchestrator(nil, nil, &fakeRasterizer{})

	_, err := o.Export(context.Background(), cv.DefaultDocument(), SourceLanguage)
	var rtm *RenderTargetMissingError
	assert.ErrorAs(t, err, &rtm)
}

func TestExportWithoutTranslator(t *testing.T) {
	o := NewOrchestrator(nil, &fakeRenderer{}, &fakeRasterizer{})

	_, err := o.Export(context.Background(), cv.DefaultDocument(), "Malay")
	var te *translation.TranslationError
	assert.ErrorAs(t, err, &te)
}

func TestFilename(t *testing.T) {
	doc := cv.DefaultDocument()
	assert.Equal(t, "Jane Doe_CV.pdf", Filename(doc))

	doc.PersonalDetails.FullName = ""
	assert.Equal(t, "CV.pdf", Filename(doc))

	doc.PersonalDetails.FullName = "A/B"
	assert.Equal(t, "A-B_CV.pdf", Filename(doc))
}

func TestSupportedLanguages(t *testing.T) {
	assert.Equal(t, []string{"English", "Malay", "Tamil"}, SupportedLanguages())
	assert.True(t, IsSupportedLanguage("Malay"))
	assert.False(t, IsSupportedLanguage("French"))
}

func TestEncodePDFEmptyCapture(t *testing.T) {
	_, err := encodePDF(nil)
	assert.Error(t, err)

	_, err = encodePDF(&Capture{})
	assert.Error(t, err)
}
