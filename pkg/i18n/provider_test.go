package i18n

import (
	"errors"
	"testing"
)

type failingStore struct{}

func (failingStore) Load() (string, error) { return "", errors.New("read failed") }
func (failingStore) Save(string) error     { return errors.New("write failed") }

func TestProviderDefaultsOnEmptyStore(t *testing.T) {
	p := NewProvider(NewMemoryStore())
	p.Init()

	if p.Current().Code != DefaultCode {
		t.Fatalf("expected default language %q, got %q", DefaultCode, p.Current().Code)
	}
	if p.RTL() {
		t.Fatal("default language is not RTL")
	}
}

func TestProviderDefaultsOnGarbageStore(t *testing.T) {
	store := NewMemoryStore()
	store.Save("klingon")

	p := NewProvider(store)
	p.Init()

	if p.Current().Code != DefaultCode {
		t.Fatalf("expected default language, got %q", p.Current().Code)
	}
}

func TestProviderRestoresStoredLanguage(t *testing.T) {
	store := NewMemoryStore()
	store.Save(Arabic)

	p := NewProvider(store)
	p.Init()

	if p.Current().Code != Arabic {
		t.Fatalf("expected stored arabic, got %q", p.Current().Code)
	}
	if !p.RTL() {
		t.Fatal("arabic should be RTL")
	}
}

func TestProviderStoreFailureFallsBackToDefault(t *testing.T) {
	p := NewProvider(failingStore{})
	p.Init()

	if p.Current().Code != DefaultCode {
		t.Fatalf("expected default on store failure, got %q", p.Current().Code)
	}
}

func TestSetLanguageIgnoresUnsupportedCode(t *testing.T) {
	p := NewProvider(NewMemoryStore())
	p.Init()
	p.SetLanguage(English)

	p.SetLanguage("de")

	if p.Current().Code != English {
		t.Fatalf("unsupported code should be a no-op, got %q", p.Current().Code)
	}
}

func TestSetLanguagePersists(t *testing.T) {
	store := NewMemoryStore()
	p := NewProvider(store)
	p.Init()

	p.SetLanguage(English)

	stored, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != English {
		t.Fatalf("expected persisted %q, got %q", English, stored)
	}

	fresh := NewProvider(store)
	fresh.Init()
	if fresh.Current().Code != English {
		t.Fatalf("expected fresh provider to restore %q, got %q", English, fresh.Current().Code)
	}
}

func TestSetLanguageBeforeInitIsIgnored(t *testing.T) {
	p := NewProvider(NewMemoryStore())

	p.SetLanguage(English)

	if p.Current().Code != DefaultCode {
		t.Fatalf("expected default before Init, got %q", p.Current().Code)
	}
}

func TestBundleFollowsLanguage(t *testing.T) {
	p := NewProvider(NewMemoryStore())
	p.Init()
	p.SetLanguage(Arabic)

	if p.Bundle().NotSelected != "غير محدد" {
		t.Fatalf("expected arabic bundle, got %q", p.Bundle().NotSelected)
	}
}
