package gizmos

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"

	"github.com/gekko3d/gizmos/rt/mesh"
)

type TextureId struct {
	id uuid.UUID
}

func (id TextureId) String() string { return id.id.String() }

type TextureAsset struct {
	version uint
	Texels  []uint8
	Width   uint32
	Height  uint32
	Format  wgpu.TextureFormat
}

// AssetServer owns the meshes and textures gizmos render with.
type AssetServer struct {
	meshes   *mesh.Store
	textures map[TextureId]TextureAsset
}

type AssetServerModule struct{}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	app.addResources(NewAssetServer())
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes:   mesh.NewStore(),
		textures: make(map[TextureId]TextureAsset),
	}
}

func (server *AssetServer) AddMesh(m *mesh.Mesh) mesh.Handle {
	return server.meshes.Add(m)
}

// Mesh returns a mesh for reading.
func (server *AssetServer) Mesh(h mesh.Handle) (*mesh.Mesh, bool) {
	return server.meshes.Get(h)
}

// MeshMut returns a mesh for writing and marks it for upload.
func (server *AssetServer) MeshMut(h mesh.Handle) *mesh.Mesh {
	return server.meshes.GetMut(h)
}

// BeginMeshEdit opens a lazy edit session on a line mesh.
func (server *AssetServer) BeginMeshEdit(h mesh.Handle) *mesh.LazyEdit {
	return server.meshes.BeginEdit(h)
}

func (server *AssetServer) MeshVersion(h mesh.Handle) uint64 {
	return server.meshes.Version(h)
}

func (server *AssetServer) Meshes() *mesh.Store {
	return server.meshes
}

func (server *AssetServer) CreateTexture(texels []uint8, width, height uint32, format wgpu.TextureFormat) TextureId {
	id := TextureId{id: uuid.New()}

	server.textures[id] = TextureAsset{
		version: 0,
		Texels:  texels,
		Width:   width,
		Height:  height,
		Format:  format,
	}

	return id
}

func (server *AssetServer) Texture(id TextureId) (TextureAsset, bool) {
	texture, ok := server.textures[id]
	return texture, ok
}
