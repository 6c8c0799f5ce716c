package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/Petka17/observable"
)

// record is the printed form of one notification. Structured formats
// print events whole; text prints only their payload.
type record struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func toRecord[T any](n observable.Notification[T]) record {
	switch n.Type() {
	case observable.OnNext:
		return record{Kind: string(observable.OnNext), Value: n.Value()}
	case observable.OnError:
		return record{Kind: string(observable.OnError), Error: n.Err().Error()}
	default:
		return record{Kind: string(n.Type())}
	}
}

// printer writes records in the configured format. Sources such as Timeout
// deliver on their own goroutine, so writes are serialised.
type printer struct {
	mu     sync.Mutex
	w      io.Writer
	format string
	err    error
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) print(r record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return
	}
	p.err = p.write(r)
}

func (p *printer) write(r record) error {
	switch p.format {
	case "json":
		return json.NewEncoder(p.w).Encode(r)
	case "yaml":
		b, err := yaml.Marshal([]record{r})
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = p.w.Write(b)
		return err
	default:
		if ev, ok := r.Value.(observable.Event); ok {
			r.Value = ev.Payload
		}
		var err error
		switch {
		case r.Error != "":
			_, err = fmt.Fprintf(p.w, "%s: %s\n", r.Kind, r.Error)
		case r.Value != nil:
			_, err = fmt.Fprintf(p.w, "%s %v\n", r.Kind, r.Value)
		default:
			_, err = fmt.Fprintln(p.w, r.Kind)
		}
		return err
	}
}

func (p *printer) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
