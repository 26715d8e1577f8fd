// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserCtxKey(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got '%s'", UserCtxKey.String())
	}
}

func TestGetUserFromContext_Success(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{Username: "alice", SharedNotes: []string{"n1"}})

	user, ok := GetUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %s", user.Username)
	}
	if len(user.SharedNotes) != 1 || user.SharedNotes[0] != "n1" {
		t.Errorf("expected shared notes [n1], got %v", user.SharedNotes)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	user, ok := GetUserFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if user.Username != "" {
		t.Errorf("expected empty user, got %s", user.Username)
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "alice")

	_, ok := GetUserFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUserFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.User{Username: "alice"})

	_, ok := GetUserFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
