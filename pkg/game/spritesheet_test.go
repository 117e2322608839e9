package game

import (
	"image"
	"image/color"
	"testing"
)

// TestSynthesizeSpritesheet 测试合成的精灵表覆盖所有格和背景区域
func TestSynthesizeSpritesheet(t *testing.T) {
	cfg := loadTestConfig(t)
	img := SynthesizeSpritesheet(cfg)

	if got := img.Bounds(); got != image.Rect(0, 0, 1102, 990) {
		t.Fatalf("Expected bounds 1102x990, got %v", got)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"蝙蝠格中心", 21, 17, color.RGBA{60, 40, 80, 255}},
		{"蝙蝠格边框", 3, 0, color.RGBA{30, 20, 40, 255}},
		{"天空", 5, 595, color.RGBA{140, 200, 240, 255}},
		{"草地", 5, 985, color.RGBA{90, 160, 90, 255}},
		{"空白区域", 1000, 10, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("Expected %v at (%d, %d), got %v", tt.want, tt.x, tt.y, got)
			}
		})
	}
}

// TestSynthesizeSpritesheetShapes 测试宝石中心不透明、角落透明
func TestSynthesizeSpritesheetShapes(t *testing.T) {
	cfg := loadTestConfig(t)
	img := SynthesizeSpritesheet(cfg)

	// 第一颗红宝石 (185, 138, 35, 30)
	center := img.RGBAAt(185+17, 138+15)
	if center.A != 255 || center.R <= center.G {
		t.Errorf("Expected opaque red at ruby center, got %v", center)
	}
	if corner := img.RGBAAt(185, 138); corner.A != 0 {
		t.Errorf("Expected transparent ruby corner, got %v", corner)
	}
}
