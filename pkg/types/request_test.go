// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"JPEG", FormatJPEG, true},
		{"jpeg", FormatJPEG, true},
		{"  jpg ", FormatJPEG, true},
		{"PNG", FormatPNG, true},
		{"png", FormatPNG, true},
		{"webp", "", false},
		{"", "", false},
		{"jpeg png", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatExt(t *testing.T) {
	if got := FormatJPEG.Ext(); got != "jpg" {
		t.Errorf("JPEG ext = %q, want jpg", got)
	}
	if got := FormatPNG.Ext(); got != "png" {
		t.Errorf("PNG ext = %q, want png", got)
	}
}

func TestClampDPI(t *testing.T) {
	tests := []struct{ in, want int }{
		{71, MinDPI},
		{72, 72},
		{300, 300},
		{600, 600},
		{601, MaxDPI},
		{-10, MinDPI},
		{10000, MaxDPI},
	}
	for _, tt := range tests {
		if got := ClampDPI(tt.in); got != tt.want {
			t.Errorf("ClampDPI(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampQuality(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, MinQuality},
		{1, 1},
		{95, 95},
		{100, 100},
		{101, MaxQuality},
	}
	for _, tt := range tests {
		if got := ClampQuality(tt.in); got != tt.want {
			t.Errorf("ClampQuality(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestConversionRequestValidate(t *testing.T) {
	valid := ConversionRequest{
		SourcePath:     "doc.pdf",
		OutputBaseName: "documento",
		DPI:            300,
		Format:         FormatJPEG,
		Quality:        95,
		Engine:         EnginePoppler,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ConversionRequest)
	}{
		{"empty source", func(r *ConversionRequest) { r.SourcePath = " " }},
		{"empty base name", func(r *ConversionRequest) { r.OutputBaseName = "" }},
		{"dpi too low", func(r *ConversionRequest) { r.DPI = 71 }},
		{"dpi too high", func(r *ConversionRequest) { r.DPI = 601 }},
		{"bad format", func(r *ConversionRequest) { r.Format = "GIF" }},
		{"bad quality", func(r *ConversionRequest) { r.Quality = 0 }},
		{"bad engine", func(r *ConversionRequest) { r.Engine = "ghostscript" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}

	// Quality is not checked for PNG, where it is ignored.
	png := valid
	png.Format = FormatPNG
	png.Quality = 0
	if err := png.Validate(); err != nil {
		t.Errorf("PNG request with zero quality rejected: %v", err)
	}
}
