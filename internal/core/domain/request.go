package domain

import "sync"

// ViewStep is one entry in a request's output sequence.
// A step either carries a model for a later view or rendered content.
type ViewStep struct {
	Name        string
	ContentType string
	Content     string
	Model       any
	HasModel    bool
}

// ViewSteps is the ordered, append-only output sequence of a request.
type ViewSteps struct {
	mu    sync.RWMutex
	steps []ViewStep
}

// HasSteps reports whether at least one step was appended.
func (s *ViewSteps) HasSteps() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.steps) > 0
}

// Len returns the number of steps.
func (s *ViewSteps) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.steps)
}

// Last returns the most recent step.
func (s *ViewSteps) Last() (ViewStep, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.steps) == 0 {
		return ViewStep{}, false
	}
	return s.steps[len(s.steps)-1], true
}

// CreateModelStep appends a step that carries model for the next view.
func (s *ViewSteps) CreateModelStep(name string, model any) {
	s.append(ViewStep{Name: name, Model: model, HasModel: true})
}

// CreateStep appends a rendered output step.
func (s *ViewSteps) CreateStep(name, contentType, content string) {
	s.append(ViewStep{Name: name, ContentType: contentType, Content: content})
}

func (s *ViewSteps) append(step ViewStep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step)
}

// Request is the per-render context handed to the resolver and its plugins.
type Request struct {
	Params Params
	Steps  *ViewSteps
}

// NewRequest returns a request with the given parameters and no steps.
func NewRequest(params Params) *Request {
	if params == nil {
		params = Params{}
	}
	return &Request{Params: params, Steps: &ViewSteps{}}
}
