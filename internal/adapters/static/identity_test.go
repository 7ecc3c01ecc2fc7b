package static

import (
	"context"
	"testing"
)

func TestIdentityResolve(t *testing.T) {
	id, err := Identity{AccountID: "111122223333", Region: "eu-central-1"}.Resolve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if id.AccountID != "111122223333" || id.Region != "eu-central-1" {
		t.Errorf("identity = %+v", id)
	}
}
