package xkblayouts

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

const DefaultEvdevXMLPath = "/usr/share/X11/xkb/rules/evdev.xml"

func ParseLayouts(path string) (*XkbConfigRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

func Decode(r io.Reader) (*XkbConfigRegistry, error) {
	registry := &XkbConfigRegistry{}
	err := xml.NewDecoder(r).Decode(registry)
	if err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	return registry, nil
}

func (r *XkbConfigRegistry) GetLayoutPrettyName(layout, variant string) string {
	if r == nil {
		return ""
	}

	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name == layout {
			if variant == "" {
				return l.ConfigItem.Description
			}

			for _, v := range l.VariantList.Variant {
				if v.ConfigItem.Name == variant {
					return v.ConfigItem.Description
				}
			}
		}
	}

	return ""
}

func (r *XkbConfigRegistry) HasLayout(layout string) bool {
	if r == nil {
		return false
	}

	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name == layout {
			return true
		}
	}
	return false
}
