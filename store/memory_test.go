package store

import (
	"errors"
	"testing"

	"github.com/iaigorluiz-svg/nutriai-api/models"
)

func TestMemoryWriteThenRead(t *testing.T) {
	m := NewMemory()

	p := models.UserProfile{UserID: "user-1", Gender: "male", BirthYear: 1990, WeightKg: 80}
	created, err := m.Put(p)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !created {
		t.Error("first Put should report created")
	}

	got, err := m.Get("user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.WeightKg != 80 || got.Gender != "male" {
		t.Errorf("Get returned %+v, want the stored profile", got)
	}
}

func TestMemoryLastWriteWins(t *testing.T) {
	m := NewMemory()

	first := models.UserProfile{UserID: "user-1", WeightKg: 80}
	second := models.UserProfile{UserID: "user-1", WeightKg: 75}

	if _, err := m.Put(first); err != nil {
		t.Fatalf("Put: %v", err)
	}
	created, err := m.Put(second)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if created {
		t.Error("second Put for the same key should not report created")
	}

	got, err := m.Get("user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.WeightKg != 75 {
		t.Errorf("WeightKg = %v, want the last written value 75", got.WeightKg)
	}
}

func TestMemoryGetUnknown(t *testing.T) {
	m := NewMemory()
	if _, err := m.Get("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get unknown user: err = %v, want ErrNotFound", err)
	}
}
