package messages_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formgate/pkg/messages"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestDefaultCatalog_English(t *testing.T) {
	set := messages.English()
	if set.ConfirmationPrimaryInvalid != "fix the primary password first" {
		t.Fatalf("unexpected primary invalid message %q", set.ConfirmationPrimaryInvalid)
	}
	if set.ConfirmationMismatch != "passwords do not match" {
		t.Fatalf("unexpected mismatch message %q", set.ConfirmationMismatch)
	}
	if set.SubmitBlocked != "fix the errors before submitting" {
		t.Fatalf("unexpected blocked notice %q", set.SubmitBlocked)
	}
}

func TestCatalog_RegionalLocaleFallsBackToBase(t *testing.T) {
	catalog := messages.Default()
	msg, err := catalog.Translate("es_MX", messages.KeyConfirmationMismatch)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if msg != "las contraseñas no coinciden" {
		t.Fatalf("expected spanish message, got %q", msg)
	}
}

func TestCatalog_UnknownLocaleUsesFallback(t *testing.T) {
	catalog := messages.Default()
	msg, err := catalog.Translate("fr", messages.KeyAgeInvalid)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if msg != "you must be at least 18 years old" {
		t.Fatalf("expected english fallback, got %q", msg)
	}
}

func TestCatalog_MissingKey(t *testing.T) {
	_, err := messages.Default().Translate("en", "nope")
	if !errors.Is(err, messages.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestLoadCatalog_MergeOverridesEntries(t *testing.T) {
	fsys := fstest.MapFS{
		"custom.yaml": &fstest.MapFile{Data: []byte(`
locales:
  en:
    field.name.invalid: "too short"
`)},
	}
	custom, err := messages.LoadCatalog(fsys, "custom.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	merged := messages.Default().Merge(custom)
	set := messages.Resolve(merged, "en", nil)
	if set.NameInvalid != "too short" {
		t.Fatalf("expected override, got %q", set.NameInvalid)
	}
	if set.EmailInvalid != "enter a valid email address" {
		t.Fatalf("expected untouched default, got %q", set.EmailInvalid)
	}
}

func TestParseCatalog_RejectsEmptyDocument(t *testing.T) {
	if _, err := messages.ParseCatalog([]byte("fallback: en\n")); err == nil {
		t.Fatalf("expected error for catalog without locales")
	}
}

func TestResolve_UsesOnMissing(t *testing.T) {
	var missing []string
	set := messages.Resolve(stubTranslator{messages.KeyNameInvalid: "Nombre corto"}, "es", func(locale, key string, _ []any, err error) string {
		missing = append(missing, key)
		return "[" + key + "]"
	})
	if set.NameInvalid != "Nombre corto" {
		t.Fatalf("expected translated name message, got %q", set.NameInvalid)
	}
	if set.AgeInvalid != "["+messages.KeyAgeInvalid+"]" {
		t.Fatalf("expected onMissing output, got %q", set.AgeInvalid)
	}
	if len(missing) != 8 {
		t.Fatalf("expected 8 missing keys, got %d (%s)", len(missing), strings.Join(missing, ","))
	}
}

func TestResolve_NilTranslatorFallsBackToEnglish(t *testing.T) {
	set := messages.Resolve(nil, "", nil)
	if set.Locale != messages.DefaultLocale {
		t.Fatalf("expected default locale, got %q", set.Locale)
	}
	if set.SubmitSuccess != "form submitted successfully" {
		t.Fatalf("unexpected success notice %q", set.SubmitSuccess)
	}
}

func TestSet_SubmitFailed(t *testing.T) {
	set := messages.English()
	if got := set.SubmitFailed(errors.New("offline")); got != "submission failed: offline" {
		t.Fatalf("unexpected failure notice %q", got)
	}
}

func TestDefault_ParsedOnceAndShared(t *testing.T) {
	first := messages.Default()
	if second := messages.Default(); first != second {
		t.Fatalf("expected the embedded catalog to be shared, got distinct instances")
	}

	merged := first.Merge(nil)
	if merged == first {
		t.Fatalf("Merge must not return the shared catalog")
	}
	if messages.English() != messages.English() {
		t.Fatalf("expected English to resolve to a stable set")
	}
}
