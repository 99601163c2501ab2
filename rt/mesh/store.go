package mesh

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle references a mesh inside a Store. The zero value references nothing.
type Handle struct {
	id uuid.UUID
}

func (h Handle) IsValid() bool {
	return h.id != uuid.Nil
}

func (h Handle) String() string {
	return h.id.String()
}

type storedMesh struct {
	mesh    *Mesh
	version uint64
}

// Store owns mesh assets. Every GetMut bumps the mesh version so a renderer
// knows which meshes must be uploaded again.
type Store struct {
	meshes map[Handle]*storedMesh
}

func NewStore() *Store {
	return &Store{meshes: make(map[Handle]*storedMesh)}
}

func (s *Store) Add(m *Mesh) Handle {
	h := Handle{id: uuid.New()}
	s.meshes[h] = &storedMesh{mesh: m}
	return h
}

// Get returns the mesh for reading. It does not mark the mesh dirty.
func (s *Store) Get(h Handle) (*Mesh, bool) {
	stored, ok := s.meshes[h]
	if !ok {
		return nil, false
	}
	return stored.mesh, true
}

// GetMut returns the mesh for writing and marks it dirty.
func (s *Store) GetMut(h Handle) *Mesh {
	stored, ok := s.meshes[h]
	if !ok {
		panic(fmt.Sprintf("unknown mesh handle %s", h))
	}
	stored.version++
	return stored.mesh
}

// Version counts how many times the mesh was fetched for writing.
func (s *Store) Version(h Handle) uint64 {
	if stored, ok := s.meshes[h]; ok {
		return stored.version
	}
	return 0
}

func (s *Store) Len() int {
	return len(s.meshes)
}
