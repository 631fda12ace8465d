package model

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"insurance_predict/pkg/logx"
)

var ErrNoClassifier = errors.New("model loader returned no classifier")

type LoadFunc func(ctx context.Context) (Classifier, error)

// Holder loads the classifier on first use and keeps it, or the load
// error, for the lifetime of the process. It never reloads.
type Holder struct {
	load       LoadFunc
	init       sync.Once
	classifier Classifier
	err        error
	loaded     atomic.Bool
}

func NewHolder(load LoadFunc) *Holder {
	return &Holder{load: load}
}

// NewStaticHolder wraps an already loaded classifier.
func NewStaticHolder(classifier Classifier) *Holder {
	return NewHolder(func(context.Context) (Classifier, error) {
		return classifier, nil
	})
}

func (h *Holder) Get(ctx context.Context) (Classifier, error) {
	h.init.Do(func() {
		h.classifier, h.err = h.load(ctx)
		if h.err == nil && h.classifier == nil {
			h.err = ErrNoClassifier
		}

		if h.err != nil {
			logger(ctx).Error("model load failed", logx.Error(h.err))
			h.classifier = nil
			return
		}

		h.loaded.Store(true)
	})

	return h.classifier, h.err
}

// Loaded reports whether a classifier is available without triggering a
// load.
func (h *Holder) Loaded() bool {
	return h.loaded.Load()
}
