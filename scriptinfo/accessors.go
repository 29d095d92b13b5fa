package scriptinfo

import (
	"ssa_parser/value"
)

// Str returns text of property <key> if it holds a string
func (si *ScriptInfo) Str(key Key) (string, bool) {
	v, ok := si.GetProperty(string(key))
	if !ok {
		return "", false
	}
	return v.AsStr()
}

// SetStr stores text <s> under <key>
func (si *ScriptInfo) SetStr(key Key, s string) {
	si.AddProperty(string(key), value.Str(s))
}

// Int returns number of property <key> if it holds an integer
func (si *ScriptInfo) Int(key Key) (int64, bool) {
	v, ok := si.GetProperty(string(key))
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// SetInt stores number <i> under <key>
func (si *ScriptInfo) SetInt(key Key, i int64) {
	si.AddProperty(string(key), value.Int(i))
}

// Title returns script title
func (si *ScriptInfo) Title() (string, bool) {
	return si.Str(KeyTitle)
}

// SetTitle stores script <title>
func (si *ScriptInfo) SetTitle(title string) {
	si.SetStr(KeyTitle, title)
}

// ScriptType returns declared format version
func (si *ScriptInfo) ScriptType() (ScriptType, bool) {
	s, ok := si.Str(KeyScriptType)
	if !ok {
		return 0, false
	}
	t, err := ParseScriptType(s)
	return t, err == nil
}

// SetScriptType stores format version <t>
func (si *ScriptInfo) SetScriptType(t ScriptType) {
	si.SetStr(KeyScriptType, t.String())
}

// Collisions returns how colliding subtitles are moved
func (si *ScriptInfo) Collisions() (Collisions, bool) {
	s, ok := si.Str(KeyCollisions)
	if !ok {
		return 0, false
	}
	c, err := ParseCollisions(s)
	return c, err == nil
}

// SetCollisions stores collision handling <c>
func (si *ScriptInfo) SetCollisions(c Collisions) {
	si.SetStr(KeyCollisions, c.String())
}

// PlayResX returns script width in pixels
func (si *ScriptInfo) PlayResX() (int64, bool) {
	return si.Int(KeyPlayResX)
}

// SetPlayResX stores script width <x>
func (si *ScriptInfo) SetPlayResX(x int64) {
	si.SetInt(KeyPlayResX, x)
}

// PlayResY returns script height in pixels
func (si *ScriptInfo) PlayResY() (int64, bool) {
	return si.Int(KeyPlayResY)
}

// SetPlayResY stores script height <y>
func (si *ScriptInfo) SetPlayResY(y int64) {
	si.SetInt(KeyPlayResY, y)
}

// PlayDepth returns colour depth
func (si *ScriptInfo) PlayDepth() (int64, bool) {
	return si.Int(KeyPlayDepth)
}

// SetPlayDepth stores colour <depth>
func (si *ScriptInfo) SetPlayDepth(depth int64) {
	si.SetInt(KeyPlayDepth, depth)
}

// WrapStyle returns line wrapping mode
func (si *ScriptInfo) WrapStyle() (int64, bool) {
	return si.Int(KeyWrapStyle)
}

// SetWrapStyle stores line wrapping mode <style>
func (si *ScriptInfo) SetWrapStyle(style int64) {
	si.SetInt(KeyWrapStyle, style)
}

// LayoutResX returns width of the video the script was laid out for
func (si *ScriptInfo) LayoutResX() (int64, bool) {
	return si.Int(KeyLayoutResX)
}

// SetLayoutResX stores layout width <x>
func (si *ScriptInfo) SetLayoutResX(x int64) {
	si.SetInt(KeyLayoutResX, x)
}

// LayoutResY returns height of the video the script was laid out for
func (si *ScriptInfo) LayoutResY() (int64, bool) {
	return si.Int(KeyLayoutResY)
}

// SetLayoutResY stores layout height <y>
func (si *ScriptInfo) SetLayoutResY(y int64) {
	si.SetInt(KeyLayoutResY, y)
}

// Timer returns timer speed in percent
func (si *ScriptInfo) Timer() (float64, bool) {
	v, ok := si.GetProperty(string(KeyTimer))
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

// SetTimer stores playback speed <percent>
func (si *ScriptInfo) SetTimer(percent float64) {
	si.AddProperty(string(KeyTimer), value.Float(percent))
}

// ScaledBorderAndShadow returns true if border and shadow scale with script resolution
func (si *ScriptInfo) ScaledBorderAndShadow() (bool, bool) {
	v, ok := si.GetProperty(string(KeyScaledBorderAndShadow))
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// SetScaledBorderAndShadow stores whether borders and shadows <scaled> with the video
func (si *ScriptInfo) SetScaledBorderAndShadow(scaled bool) {
	si.AddProperty(string(KeyScaledBorderAndShadow), value.Boolean(scaled))
}

// YCbCrMatrix returns colour matrix of the video
func (si *ScriptInfo) YCbCrMatrix() (string, bool) {
	return si.Str(KeyYCbCrMatrix)
}

// SetYCbCrMatrix stores colour <matrix>
func (si *ScriptInfo) SetYCbCrMatrix(matrix string) {
	si.SetStr(KeyYCbCrMatrix, matrix)
}
