package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/billcraft/invoicing-system/internal/core/domain"
	"github.com/billcraft/invoicing-system/internal/core/ports"
)

type memFileStore struct {
	files map[string][]byte
	err   error
}

func newMemFileStore() *memFileStore {
	return &memFileStore{files: make(map[string][]byte)}
}

func (s *memFileStore) Save(name string, contents io.Reader) error {
	if s.err != nil {
		return s.err
	}
	data, err := io.ReadAll(contents)
	if err != nil {
		return err
	}
	s.files[name] = data
	return nil
}

func (s *memFileStore) Path(name string) string {
	return "mem/" + name
}

func strptr(s string) *string { return &s }

func TestProfileService_Create(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), newMemFileStore(), zerolog.Nop())

	created, err := svc.Create(context.Background(), 1, ports.CreateProfileInput{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		BusinessName: "Analytical Engines",
		Address:      "12 St James Sq",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.FirstName != "Ada" || created.BusinessName != "Analytical Engines" {
		t.Fatalf("fields not persisted: %+v", created)
	}
	if created.OwnerID != 1 {
		t.Fatalf("owner not recorded: %+v", created)
	}
}

func TestProfileService_Create_Duplicate(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), newMemFileStore(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), 1, ports.CreateProfileInput{FirstName: "Ada"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), 1, ports.CreateProfileInput{FirstName: "Again"})
	if !errors.Is(err, domain.ErrProfileExists) {
		t.Fatalf("expected ErrProfileExists, got %v", err)
	}

	// A different user can still create theirs.
	if _, err := svc.Create(context.Background(), 2, ports.CreateProfileInput{FirstName: "Bob"}); err != nil {
		t.Fatalf("second user create failed: %v", err)
	}
}

func TestProfileService_Update_PartialPatch(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewProfileService(repo, newMemFileStore(), zerolog.Nop())

	_, _ = svc.Create(context.Background(), 1, ports.CreateProfileInput{
		FirstName: "Ada", LastName: "Lovelace", BusinessName: "Engines", Address: "Old Rd",
	})

	updated, err := svc.Update(context.Background(), 1, ports.UpdateProfileInput{
		Address: strptr("New Rd 9"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Address != "New Rd 9" {
		t.Fatalf("patched field not applied: %+v", updated)
	}
	if updated.FirstName != "Ada" || updated.LastName != "Lovelace" || updated.BusinessName != "Engines" {
		t.Fatalf("absent fields were clobbered: %+v", updated)
	}

	// An empty string in the patch is an explicit value, not an omission.
	updated, err = svc.Update(context.Background(), 1, ports.UpdateProfileInput{BusinessName: strptr("")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.BusinessName != "" {
		t.Fatalf("explicit empty value ignored: %+v", updated)
	}
}

func TestProfileService_Update_Missing(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), newMemFileStore(), zerolog.Nop())

	_, err := svc.Update(context.Background(), 99, ports.UpdateProfileInput{FirstName: strptr("Nobody")})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileService_UploadPicture(t *testing.T) {
	repo := newStubProfileRepo()
	files := newMemFileStore()
	svc := NewProfileService(repo, files, zerolog.Nop())

	_, _ = svc.Create(context.Background(), 42, ports.CreateProfileInput{FirstName: "Ada"})

	profile, err := svc.UploadPicture(context.Background(), 42, "portrait.png", bytes.NewReader([]byte("png-bytes")))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if profile.Picture == "" {
		t.Fatalf("picture name not recorded on profile")
	}
	if !strings.HasPrefix(profile.Picture, "42_") || !strings.HasSuffix(profile.Picture, "_portrait.png") {
		t.Fatalf("unexpected derived name %q", profile.Picture)
	}
	if got, ok := files.files[profile.Picture]; !ok || string(got) != "png-bytes" {
		t.Fatalf("file contents not stored under %q", profile.Picture)
	}

	// A second upload of the same original name gets a fresh stored name.
	again, err := svc.UploadPicture(context.Background(), 42, "portrait.png", bytes.NewReader([]byte("other")))
	if err != nil {
		t.Fatalf("second upload failed: %v", err)
	}
	if again.Picture == profile.Picture {
		t.Fatalf("repeated upload reused stored name %q", again.Picture)
	}
}

func TestProfileService_UploadPicture_NoProfile(t *testing.T) {
	files := newMemFileStore()
	svc := NewProfileService(newStubProfileRepo(), files, zerolog.Nop())

	_, err := svc.UploadPicture(context.Background(), 7, "x.png", bytes.NewReader([]byte("data")))
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if len(files.files) != 0 {
		t.Fatalf("file written despite missing profile")
	}
}

func TestProfileService_UploadPicture_StoreFailure(t *testing.T) {
	repo := newStubProfileRepo()
	files := newMemFileStore()
	files.err = errors.New("disk full")
	svc := NewProfileService(repo, files, zerolog.Nop())

	_, _ = svc.Create(context.Background(), 1, ports.CreateProfileInput{FirstName: "Ada"})

	_, err := svc.UploadPicture(context.Background(), 1, "x.png", bytes.NewReader([]byte("data")))
	if err == nil {
		t.Fatalf("expected store error to surface")
	}
	got, _ := svc.Get(context.Background(), 1)
	if got.Picture != "" {
		t.Fatalf("picture recorded despite failed save: %q", got.Picture)
	}
}

func TestProfileService_Delete(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), newMemFileStore(), zerolog.Nop())

	_, _ = svc.Create(context.Background(), 1, ports.CreateProfileInput{FirstName: "Ada"})
	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), 1); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound on repeat delete, got %v", err)
	}
}

func TestDeriveFilename(t *testing.T) {
	name := deriveFilename(7, "my photo (new)!.png")

	parts := strings.SplitN(name, "_", 3)
	if len(parts) != 3 {
		t.Fatalf("unexpected shape %q", name)
	}
	if parts[0] != "7" {
		t.Fatalf("owner prefix missing: %q", name)
	}
	if len(parts[1]) != 8 {
		t.Fatalf("random component should be 8 chars, got %q", parts[1])
	}
	if strings.ContainsAny(parts[2], " ()!") {
		t.Fatalf("unsafe characters not sanitized: %q", parts[2])
	}

	// Path components in the original name must not survive.
	name = deriveFilename(7, "../../etc/passwd")
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Fatalf("path traversal survived derivation: %q", name)
	}

	// Owner ids round-trip as decimal.
	name = deriveFilename(123456, "a.png")
	if _, err := strconv.Atoi(strings.SplitN(name, "_", 2)[0]); err != nil {
		t.Fatalf("owner prefix not numeric: %q", name)
	}
}
