package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []string
}

func (r *recorder) DeclarationLowered() DeclarationLowered {
	return func(kind, name string) { r.events = append(r.events, "lowered:"+kind+":"+name) }
}

func (r *recorder) DeclarationSkipped() DeclarationSkipped {
	return func(kind, name, reason string) { r.events = append(r.events, "skipped:"+kind+":"+name) }
}

func (r *recorder) TypeRegistered() TypeRegistered {
	return func(native, qualified string) { r.events = append(r.events, "registered:"+native+":"+qualified) }
}

func (r *recorder) PassTime() PassTime {
	return func(source string, start *time.Time, end *time.Time, err error) {
		r.events = append(r.events, "time:"+source)
	}
}

func (r *recorder) Log() Log {
	return func(message string, args ...interface{}) { r.events = append(r.events, message) }
}

func TestAdapter(t *testing.T) {
	now := time.Now()
	rec := &recorder{}
	adapter := NewLogger(rec)
	adapter.DeclarationLowered("enum", "Foo")
	adapter.DeclarationSkipped("struct", "Bar", "missing repr(C)")
	adapter.TypeRegistered("Foo", "ns.Foo")
	adapter.PassTime("lib.rs", &now, &now, nil)
	adapter.Log("done")
	assert.Equal(t, []string{"lowered:enum:Foo", "skipped:struct:Bar", "registered:Foo:ns.Foo", "time:lib.rs", "done"}, rec.events)
}

func TestAdapter_NilSafe(t *testing.T) {
	now := time.Now()
	for _, adapter := range []*Adapter{nil, NewLogger(nil), NewLogger(Nop()), NewLogger(NewTimeLogger(time.Hour, nil))} {
		assert.NotPanics(t, func() {
			adapter.DeclarationLowered("enum", "Foo")
			adapter.DeclarationSkipped("enum", "Foo", "")
			adapter.TypeRegistered("Foo", "Foo")
			adapter.PassTime("lib.rs", &now, &now, nil)
			adapter.Log("x")
		})
	}
}

func TestCounterAdapter_Nil(t *testing.T) {
	counter := NewCounter(nil)
	onDone := counter.Begin(time.Now())
	assert.EqualValues(t, 0, onDone(time.Now()))
	assert.EqualValues(t, 0, counter.IncrementValue("success"))
	assert.EqualValues(t, 0, counter.DecrementValue("success"))
}

func TestTimeLogger(t *testing.T) {
	start := time.Now()
	fast := start.Add(time.Millisecond)
	slow := start.Add(time.Second)
	rec := &recorder{}
	adapter := NewLogger(NewTimeLogger(100*time.Millisecond, rec))
	adapter.PassTime("fast.rs", &start, &fast, nil)
	adapter.PassTime("slow.rs", &start, &slow, nil)
	adapter.DeclarationLowered("enum", "Foo")
	assert.Equal(t, []string{"time:slow.rs", "lowered:enum:Foo"}, rec.events)
}
