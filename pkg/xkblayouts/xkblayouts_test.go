package xkblayouts

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const evdevXML = `<?xml version="1.0" encoding="UTF-8"?>
<xkbConfigRegistry version="1.1">
  <layoutList>
    <layout>
      <configItem>
        <name>us</name>
        <shortDescription>en</shortDescription>
        <description>English (US)</description>
        <languageList><iso639Id>eng</iso639Id></languageList>
      </configItem>
      <variantList>
        <variant><configItem><name>dvorak</name><description>English (Dvorak)</description></configItem></variant>
      </variantList>
    </layout>
    <layout>
      <configItem>
        <name>ru</name>
        <description>Russian</description>
        <languageList><iso639Id>rus</iso639Id></languageList>
      </configItem>
    </layout>
    <layout>
      <configItem>
        <name>il</name>
        <description>Hebrew</description>
      </configItem>
    </layout>
  </layoutList>
</xkbConfigRegistry>`

func TestDecode(t *testing.T) {
	r, err := Decode(strings.NewReader(evdevXML))
	require.NoError(t, err)

	require.Len(t, r.LayoutList.Layout, 3)
	assert.Equal(t, []string{"rus"}, r.LayoutList.Layout[1].ConfigItem.LanguageList.ISO639)
	assert.Equal(t, "English (US)", r.GetLayoutPrettyName("us", ""))
	assert.Equal(t, "English (Dvorak)", r.GetLayoutPrettyName("us", "dvorak"))
	assert.Equal(t, "", r.GetLayoutPrettyName("xx", ""))
	assert.True(t, r.HasLayout("il"))
	assert.False(t, r.HasLayout("de"))
}

func TestParseLayouts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evdev.xml")
	require.NoError(t, os.WriteFile(path, []byte(evdevXML), 0644))

	r, err := ParseLayouts(path)
	require.NoError(t, err)
	assert.Len(t, r.LayoutList.Layout, 3)

	_, err = ParseLayouts(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestLayoutsForLocales(t *testing.T) {
	r, err := Decode(strings.NewReader(evdevXML))
	require.NoError(t, err)

	locales := []string{"C", "C.utf8", "POSIX", "en_US.utf8", "ru_RU.UTF-8", "he_IL.utf8", "eo"}
	assert.Equal(t, []string{"us", "ru", "il"}, r.LayoutsForLocales(locales))
	assert.Empty(t, r.LayoutsForLocales([]string{"de_DE.UTF-8"}))

	var nilRegistry *XkbConfigRegistry
	assert.Nil(t, nilRegistry.LayoutsForLocales(locales))
}
