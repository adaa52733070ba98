package export

import (
	"context"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"cv-generator/internal/cv"
	"cv-generator/internal/translation"
)

// Phase is the orchestrator's position inside an export attempt.
type Phase string

// Export phases, in order. Translation is skipped for the source language.
const (
	PhaseIdle        Phase = "idle"
	PhaseRequesting  Phase = "requesting"
	PhaseTranslating Phase = "translating"
	PhaseRendering   Phase = "rendering"
	PhaseEncoding    Phase = "encoding"
)

// SourceLanguage is the language the document is authored in; exporting to
// it skips the translation collaborator entirely.
const SourceLanguage = "English"

// SupportedLanguages is the closed set of export languages.
func SupportedLanguages() []string {
	return []string{SourceLanguage, "Malay", "Tamil"}
}

// IsSupportedLanguage reports whether language is in the closed set.
func IsSupportedLanguage(language string) bool {
	for _, l := range SupportedLanguages() {
		if l == language {
			return true
		}
	}
	return false
}

// DefaultScale is the device scale factor used for rasterization.
const DefaultScale = 2.0

// Translator produces a translated copy of a document snapshot.
type Translator interface {
	Translate(ctx context.Context, doc cv.Document, language string) (cv.Document, error)
}

// Renderer produces the off-screen HTML surface for a snapshot.
type Renderer interface {
	Render(doc cv.Document) (string, error)
}

// Result is a finished export: the PDF bytes and the download filename.
type Result struct {
	Filename string
	PDF      []byte
}

// Orchestrator runs export attempts. A single in-flight flag gates entry:
// it is set before the first suspension point and cleared on every exit
// path, so at most one export runs at a time and a second request is
// rejected rather than queued. The live document is never touched; the
// orchestrator works on a snapshot it exclusively owns.
type Orchestrator struct {
	translator Translator
	renderer   Renderer
	rasterizer Rasterizer
	scale      float64

	inFlight atomic.Bool

	mu    sync.Mutex
	phase Phase
}

// NewOrchestrator wires the three collaborators. translator may be nil when
// no translation service is configured; only non-English exports need it.
func NewOrchestrator(translator Translator, renderer Renderer, rasterizer Rasterizer) *Orchestrator {
	return &Orchestrator{
		translator: translator,
		renderer:   renderer,
		rasterizer: rasterizer,
		scale:      DefaultScale,
		phase:      PhaseIdle,
	}
}

// SetScale overrides the rasterization scale factor. Must be called before
// the first Export; non-positive values are ignored.
func (o *Orchestrator) SetScale(scale float64) {
	if scale > 0 {
		o.scale = scale
	}
}

// Phase returns the orchestrator's current phase.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	o.phase = p
	o.mu.Unlock()
}

// Export runs one export attempt for doc in the given target language. On
// any failure the transient snapshot is discarded and the orchestrator
// returns to idle with no partial output.
func (o *Orchestrator) Export(ctx context.Context, doc cv.Document, language string) (*Result, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, ErrExportInFlight
	}
	defer func() {
		o.setPhase(PhaseIdle)
		o.inFlight.Store(false)
	}()

	attempt := uuid.New().String()[:8]
	o.setPhase(PhaseRequesting)
	log.Printf("export %s: started (language=%s)", attempt, language)

	snapshot := doc.Clone()

	if language != SourceLanguage {
		if o.translator == nil {
			return nil, &translation.TranslationError{Message: "no translation service configured"}
		}
		o.setPhase(PhaseTranslating)
		translated, err := o.translator.Translate(ctx, snapshot, language)
		if err != nil {
			log.Printf("export %s: translation failed: %v", attempt, err)
			return nil, err
		}
		// The collaborator is not trusted with binary-as-text fields.
		translated.PersonalDetails.Photo = doc.PersonalDetails.Photo
		snapshot = translated
	}

	o.setPhase(PhaseRendering)
	if o.renderer == nil {
		return nil, &RenderTargetMissingError{Message: "no renderer configured"}
	}
	html, err := o.renderer.Render(snapshot)
	if err != nil {
		log.Printf("export %s: render failed: %v", attempt, err)
		return nil, err
	}

	o.setPhase(PhaseEncoding)
	if o.rasterizer == nil {
		return nil, &RenderTargetMissingError{Message: "no rasterizer configured"}
	}
	capture, err := o.rasterizer.Capture(ctx, html, o.scale)
	if err != nil {
		log.Printf("export %s: capture failed: %v", attempt, err)
		return nil, err
	}

	pdf, err := encodePDF(capture)
	if err != nil {
		log.Printf("export %s: encode failed: %v", attempt, err)
		return nil, err
	}

	log.Printf("export %s: finished (%d bytes)", attempt, len(pdf))
	return &Result{Filename: Filename(snapshot), PDF: pdf}, nil
}

// Filename derives the download name from the document's full name.
func Filename(doc cv.Document) string {
	name := strings.TrimSpace(doc.PersonalDetails.FullName)
	name = strings.ReplaceAll(name, "/", "-")
	if name == "" {
		return "CV.pdf"
	}
	return name + "_CV.pdf"
}
