package channel

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestRegistry_BuiltinNames(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name string
		want Channel
	}{
		{"red", Red},
		{"Red", Red},
		{"R", Red},
		{"g", Green},
		{"B", Blue},
		{"A", Alpha},
		{"Z", Depth},
		{"depth", Depth},
		{" mask ", Mask},
		{"U", U},
		{"v", V},
	}
	for _, tt := range tests {
		got, ok := r.Find(tt.name)
		if !ok || got != tt.want {
			t.Errorf("Find(%q) = %v, %v; want %v", tt.name, got, ok, tt.want)
		}
	}
}

func TestRegistry_LookupAllocates(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Find("motion.x"); ok {
		t.Fatal("Find must not allocate")
	}
	c, err := r.Lookup("motion.x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if c != firstUser {
		t.Errorf("first user channel = %d, want %d", c, firstUser)
	}
	again, err := r.Lookup("MOTION.X")
	if err != nil || again != c {
		t.Errorf("case-folded lookup = %v, %v; want %v", again, err, c)
	}
	if name, ok := r.Name(c); !ok || name != "motion.x" {
		t.Errorf("Name() = %q, %v", name, ok)
	}
	if got := r.Len(); got != int(firstUser) {
		t.Errorf("Len() = %d, want %d", got, firstUser)
	}
}

func TestRegistry_Exhaustion(t *testing.T) {
	r := NewRegistry()
	for i := int(firstUser); i < MaxChannels; i++ {
		if _, err := r.Lookup(fmt.Sprintf("extra%d", i)); err != nil {
			t.Fatalf("Lookup #%d: %v", i, err)
		}
	}
	if _, err := r.Lookup("one-too-many"); !errors.Is(err, ErrTooManyChannels) {
		t.Errorf("error = %v, want ErrTooManyChannels", err)
	}
	if _, err := r.Lookup("  "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("error = %v, want ErrEmptyName", err)
	}
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	r := NewRegistry()
	names := []string{"n0", "n1", "n2", "n3"}

	var wg sync.WaitGroup
	results := make([][]Channel, 8)
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range names {
				c, err := r.Lookup(n)
				if err != nil {
					t.Errorf("Lookup(%q): %v", n, err)
					return
				}
				results[g] = append(results[g], c)
			}
		}()
	}
	wg.Wait()

	for g := 1; g < len(results); g++ {
		for i := range names {
			if results[g][i] != results[0][i] {
				t.Errorf("goroutine %d got %v for %q, goroutine 0 got %v", g, results[g][i], names[i], results[0][i])
			}
		}
	}
	if got := r.Len(); got != int(firstUser)-1+len(names) {
		t.Errorf("Len() = %d", got)
	}
}

func TestChannel_String(t *testing.T) {
	if got := Green.String(); got != "green" {
		t.Errorf("Green.String() = %q", got)
	}
	if got := Channel(62).String(); got != "channel(62)" {
		t.Errorf("unregistered String() = %q", got)
	}
}
