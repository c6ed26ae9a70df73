// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if OwnerIDCtxKey.String() != "ownerID" {
		t.Errorf("expected 'ownerID', got '%s'", OwnerIDCtxKey.String())
	}
}

func TestGetOwnerIDFromContext(t *testing.T) {
	ctx := WithOwnerID(context.Background(), "owner-1")

	ownerID, ok := GetOwnerIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if ownerID != "owner-1" {
		t.Errorf("expected 'owner-1', got '%s'", ownerID)
	}
}

func TestGetOwnerIDFromContext_Missing(t *testing.T) {
	if _, ok := GetOwnerIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
	if _, ok := GetOwnerIDFromContext(WithOwnerID(context.Background(), "")); ok {
		t.Error("expected ok=false for blank owner id")
	}
	ctx := context.WithValue(context.Background(), OwnerIDCtxKey, 42)
	if _, ok := GetOwnerIDFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}
