package i18n

import (
	"sync"
)

// PreferenceStore persists the visitor's language choice. Load returns
// the stored code (possibly empty); Save overwrites it.
type PreferenceStore interface {
	Load() (string, error)
	Save(code string) error
}

// Provider holds the active language for one visitor. It starts
// uninitialized and becomes ready after Init reads the persisted
// preference; an absent or unsupported stored code selects the default.
type Provider struct {
	mu      sync.RWMutex
	store   PreferenceStore
	current Language
	ready   bool
}

func NewProvider(store PreferenceStore) *Provider {
	return &Provider{store: store}
}

// Init performs the one-time uninitialized-to-ready transition. Calling
// it again is a no-op. A store read failure is treated the same as an
// absent preference.
func (p *Provider) Init() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return
	}

	code := DefaultCode
	if p.store != nil {
		if stored, err := p.store.Load(); err == nil && IsSupported(stored) {
			code = stored
		}
	}
	p.current = Resolve(code)
	p.ready = true
}

// SetLanguage switches the active language and persists the choice.
// Unsupported codes leave the current language unchanged.
func (p *Provider) SetLanguage(code string) {
	if !IsSupported(code) {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	p.current = Resolve(code)
	if p.store != nil {
		_ = p.store.Save(code)
	}
}

func (p *Provider) Current() Language {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.ready {
		return Resolve(DefaultCode)
	}
	return p.current
}

// RTL reports whether the active language lays out right-to-left.
func (p *Provider) RTL() bool {
	return p.Current().RTL
}

// Bundle returns the string bundle for the active language.
func (p *Provider) Bundle() *Bundle {
	return BundleFor(p.Current().Code)
}
