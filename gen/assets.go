package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// imageExtensions are probed in order when locating the local image asset.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".svg", ".webp"}

// placeholderSVG is synthesized when no local image is found. Missing
// artwork is never fatal.
const placeholderSVG = "<svg width='800' height='400'><rect width='800' height='400' fill='#eee'/>" +
	"<text x='50%' y='50%' text-anchor='middle' dy='.3em'>Placeholder</text></svg>"

// FindLocalImage returns the first existing <basename><ext> in dir for the
// probed extensions, or "" when none exists.
func FindLocalImage(dir, basename string) string {
	for _, ext := range imageExtensions {
		p := filepath.Join(dir, basename+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// EnsureAssets populates <outDir>/assets with the page image and returns
// its path relative to outDir (always forward-slashed, it lands in an HTML
// attribute). imagePath == "" synthesizes the placeholder instead.
func EnsureAssets(outDir, imagePath string) (string, error) {
	assets := filepath.Join(outDir, "assets")
	if err := os.MkdirAll(assets, 0o755); err != nil {
		return "", fmt.Errorf("creating assets dir: %w", err)
	}

	if imagePath == "" {
		logrus.Warn("no local image found, generating placeholder")
		out := filepath.Join(assets, "image_a.svg")
		if err := os.WriteFile(out, []byte(placeholderSVG), 0o644); err != nil {
			return "", fmt.Errorf("writing placeholder image: %w", err)
		}
		return "assets/image_a.svg", nil
	}

	ext := filepath.Ext(imagePath)
	out := filepath.Join(assets, "image_a"+ext)
	if err := copyFile(imagePath, out); err != nil {
		return "", fmt.Errorf("copying image asset: %w", err)
	}
	return "assets/image_a" + ext, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
