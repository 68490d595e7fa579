// Package assets resolves the game's image files against the asset
// directory and loads them through a render.ResourceLoader.
package assets

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"chosenoffset.com/abacwrsed/internal/config"
	"chosenoffset.com/abacwrsed/internal/render"
)

// Store loads named images from Dir. Every call reads the file again; two
// entities of the same kind never share image data.
type Store struct {
	Loader render.ResourceLoader
	Dir    string
}

// NewStore creates a store rooted at dir.
func NewStore(loader render.ResourceLoader, dir string) *Store {
	return &Store{Loader: loader, Dir: dir}
}

// Path returns the on-disk path of a named asset.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Image loads a named image.
func (s *Store) Image(name string) (render.Image, error) {
	path := s.Path(name)
	img, err := s.Loader.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	log.Debug("loaded image", "path", path)
	return img, nil
}

// PlayerSprites holds every image the player can show.
type PlayerSprites struct {
	Stand render.Image
	Jump  render.Image
	Sad   render.Image
	Walk  []render.Image
}

// LoadPlayerSprites loads the stand, jump, sad and walk-cycle images.
func LoadPlayerSprites(s *Store, names config.AssetsConfig) (PlayerSprites, error) {
	var sprites PlayerSprites
	var err error

	if sprites.Stand, err = s.Image(names.PlayerStand); err != nil {
		return sprites, err
	}
	if sprites.Jump, err = s.Image(names.PlayerJump); err != nil {
		return sprites, err
	}
	if sprites.Sad, err = s.Image(names.PlayerSad); err != nil {
		return sprites, err
	}

	sprites.Walk = make([]render.Image, names.WalkFrames)
	for i := range sprites.Walk {
		if sprites.Walk[i], err = s.Image(names.WalkFrame(i)); err != nil {
			return sprites, err
		}
	}
	return sprites, nil
}

// Names lists every file the game loads, for generators and checks.
func Names(names config.AssetsConfig) []string {
	list := []string{
		names.PlayerStand,
		names.PlayerJump,
		names.PlayerSad,
	}
	for i := 0; i < names.WalkFrames; i++ {
		list = append(list, names.WalkFrame(i))
	}
	return append(list,
		names.WallH,
		names.WallV,
		names.WallHJunction,
		names.WallVEndJunction,
		names.Barrier,
		names.SadBarrier,
		names.HappyBarrier,
	)
}
