package endpoints

import (
	"sync"
	"testing"

	"github.com/hubscan/hubscan/pkg/errors"
)

func TestEndpointsAddGetDelete(t *testing.T) {
	set := NewEndpoints()

	prod := New("https://github.example.com/api/v3", "prod")
	if err := set.Add(prod); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := set.Add(New("https://github.example.com/api/v3/", "other name")); !errors.IsAlreadyExists(err) {
		t.Errorf("Add duplicate: got %v, want ErrAlreadyExists", err)
	}

	// Lookup accepts raw, unnormalized input.
	got, ok := set.Get("https://GitHub.Example.COM/api/v3/")
	if !ok {
		t.Fatal("Get did not find endpoint by unnormalized URI")
	}
	if got.Name != "prod" {
		t.Errorf("Name = %q, want %q", got.Name, "prod")
	}

	if !set.Exists("https://github.example.com/api/v3") {
		t.Error("Exists returned false for configured endpoint")
	}

	if err := set.Delete("https://github.example.com/api/v3"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := set.Delete("https://github.example.com/api/v3"); !errors.IsNotFound(err) {
		t.Errorf("Delete missing: got %v, want ErrNotFound", err)
	}
	if set.Len() != 0 {
		t.Errorf("Len = %d, want 0", set.Len())
	}
}

func TestEndpointsListSorted(t *testing.T) {
	set := NewEndpoints(WithEndpoints(
		New("https://zeta.example.com/api/v3", ""),
		New("https://alpha.example.com/api/v3", ""),
		New("https://mid.example.com/api/v3", ""),
	))

	list := set.List()
	if len(list) != 3 {
		t.Fatalf("List returned %d endpoints, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].APIURI >= list[i].APIURI {
			t.Errorf("List not sorted: %q before %q", list[i-1].APIURI, list[i].APIURI)
		}
	}
}

func TestEndpointsResolve(t *testing.T) {
	// Simulate endpoints loaded from an older config file.
	set := NewEndpoints(WithEndpoints(
		Endpoint{APIURI: "https://GitHub.Example.COM/api/v3/", Name: "stale"},
		New("https://github.other.com/api/v3", "canonical"),
	))

	migrated := set.Resolve()
	if migrated != 1 {
		t.Errorf("Resolve migrated %d endpoints, want 1", migrated)
	}

	got, ok := set.Get("https://github.example.com/api/v3")
	if !ok {
		t.Fatal("migrated endpoint not found under normalized key")
	}
	if got.Name != "stale" {
		t.Errorf("Name = %q, want preserved name", got.Name)
	}

	// Second pass is a no-op.
	if migrated := set.Resolve(); migrated != 0 {
		t.Errorf("second Resolve migrated %d endpoints, want 0", migrated)
	}
}

func TestEndpointsConcurrentAccess(t *testing.T) {
	set := NewEndpoints()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			set.Set(New("https://github.example.com/api/v3", "prod"))
		}(i)
		go func(n int) {
			defer wg.Done()
			set.ForEach(func(Endpoint) bool { return true })
			_ = set.List()
			_ = set.Len()
		}(i)
	}
	wg.Wait()

	if set.Len() != 1 {
		t.Errorf("Len = %d, want 1", set.Len())
	}
}
