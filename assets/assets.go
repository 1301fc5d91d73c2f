package assets

import (
	"bytes"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteSet holds the player's walk cycle. Frame 0 doubles as the idle pose.
type SpriteSet struct {
	Left  []*ebiten.Image
	Right []*ebiten.Image
}

// Frame returns the walk frame for the given facing, or nil when no frames
// are loaded for it.
func (s *SpriteSet) Frame(facing float64, index int) *ebiten.Image {
	if s == nil {
		return nil
	}
	frames := s.Right
	if facing < 0 {
		frames = s.Left
	}
	if len(frames) == 0 {
		return nil
	}
	return frames[index%len(frames)]
}

type SpriteLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *SpriteLoader) LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}

	l.cache[name] = img
	return img, nil
}

// LoadWalkCycle reads the left-facing walk frames matching pattern, in name
// order, and mirrors them for the right-facing set.
func (l *SpriteLoader) LoadWalkCycle(pattern string) (*SpriteSet, error) {
	names, err := fs.Glob(l.fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("assets: glob %s: %w", pattern, err)
	}
	sort.Strings(names)

	set := &SpriteSet{}
	for _, name := range names {
		if path.Ext(name) != ".png" {
			continue
		}
		img, err := l.LoadImage(name)
		if err != nil {
			return nil, err
		}
		set.Left = append(set.Left, img)
		set.Right = append(set.Right, mirror(img))
	}
	return set, nil
}

func mirror(img *ebiten.Image) *ebiten.Image {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	out := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(-1, 1)
	op.GeoM.Translate(float64(w), 0)
	out.DrawImage(img, op)
	return out
}
