package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/landing-motion/internal/config"
	domain "github.com/oshokin/landing-motion/internal/domain/landing"
)

// Field names of the stored JSON object.
const (
	fieldSessionID        = "session_id"
	fieldSavedAt          = "saved_at"
	fieldGalleryIndex     = "gallery_index"
	fieldTestimonialIndex = "testimonial_index"
	fieldScrollOffset     = "scroll_offset"
)

// Repository defines persistence operations for the preview session.
type Repository interface {
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}

// FileRepository persists the session to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) over a
// google.protobuf.Struct so the file stays a flat, human-editable object.
type FileRepository struct {
	// path is the filesystem location of the JSON session file.
	path string
	// mu protects concurrent access to the session file.
	mu sync.Mutex
}

var (
	// ErrNotFound is returned when the session file does not exist yet.
	ErrNotFound = errors.New("session not found")
	// errSessionIsNotSet is returned when Save receives a nil session.
	errSessionIsNotSet = errors.New("session is not set")
)

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the session from disk.
func (r *FileRepository) Load(_ context.Context) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read session file: %w", err)
	}

	var stored structpb.Struct
	if err = protojson.Unmarshal(contents, &stored); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}

	return fromProto(&stored)
}

// Save writes the session to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, session *domain.Session) error {
	if session == nil {
		return errSessionIsNotSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := toProto(session)
	if err != nil {
		return err
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline:       true,
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// fromProto converts the stored object into the domain Session model.
// Missing fields keep their zero values.
func fromProto(stored *structpb.Struct) (*domain.Session, error) {
	fields := stored.GetFields()

	session := &domain.Session{
		ID:               fields[fieldSessionID].GetStringValue(),
		GalleryIndex:     int(fields[fieldGalleryIndex].GetNumberValue()),
		TestimonialIndex: int(fields[fieldTestimonialIndex].GetNumberValue()),
		ScrollOffset:     int(fields[fieldScrollOffset].GetNumberValue()),
	}

	if raw := fields[fieldSavedAt].GetStringValue(); raw != "" {
		var ts timestamppb.Timestamp
		if err := protojson.Unmarshal([]byte(`"`+raw+`"`), &ts); err != nil {
			return nil, fmt.Errorf("decode saved_at: %w", err)
		}

		session.SavedAt = ts.AsTime()
	}

	return session, nil
}

// toProto converts the domain Session model into a protobuf Struct.
func toProto(session *domain.Session) (*structpb.Struct, error) {
	savedAt := ""

	if !session.SavedAt.IsZero() {
		ts := timestamppb.New(session.SavedAt)
		if err := ts.CheckValid(); err != nil {
			return nil, fmt.Errorf("invalid saved_at: %w", err)
		}

		savedAt = ts.AsTime().Format(time.RFC3339Nano)
	}

	stored, err := structpb.NewStruct(map[string]any{
		fieldSessionID:        session.ID,
		fieldSavedAt:          savedAt,
		fieldGalleryIndex:     session.GalleryIndex,
		fieldTestimonialIndex: session.TestimonialIndex,
		fieldScrollOffset:     session.ScrollOffset,
	})
	if err != nil {
		return nil, fmt.Errorf("build session object: %w", err)
	}

	return stored, nil
}
