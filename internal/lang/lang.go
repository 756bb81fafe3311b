// Package lang holds the static SuperCollider lookup tables served by the
// language server: keywords, class names, method names, and the markdown help
// attached to a subset of them. The tables are immutable package data; lookup
// is linear prefix matching for completion and exact matching for hover.
package lang

import "strings"

// Kind classifies a completion item.
type Kind int

const (
	KindKeyword Kind = iota
	KindClass
	KindMethod
)

// Item is one completion candidate with its optional markdown documentation.
type Item struct {
	Label string
	Kind  Kind
	Doc   string
}

// Completions returns every keyword, class and method starting with prefix,
// keywords first, then classes, then methods. An empty prefix matches nothing.
func Completions(prefix string) []Item {
	if prefix == "" {
		return nil
	}

	var items []Item
	for _, kw := range keywords {
		if strings.HasPrefix(kw, prefix) {
			items = append(items, Item{Label: kw, Kind: KindKeyword})
		}
	}
	for _, class := range classes {
		if strings.HasPrefix(class, prefix) {
			items = append(items, Item{Label: class, Kind: KindClass, Doc: classDocs[class]})
		}
	}
	for _, method := range methods {
		if strings.HasPrefix(method, prefix) {
			items = append(items, Item{Label: method, Kind: KindMethod, Doc: methodDocs[method]})
		}
	}
	return items
}

// HoverDoc returns the markdown help for word, class docs taking precedence
// over method docs. The second result reports whether help exists.
func HoverDoc(word string) (string, bool) {
	if doc, ok := classDocs[word]; ok {
		return doc, true
	}
	if doc, ok := methodDocs[word]; ok {
		return doc, true
	}
	return "", false
}

// keywords are the reserved words and pseudo-variables of sclang.
var keywords = []string{
	"arg",
	"case",
	"classvar",
	"const",
	"currentEnvironment",
	"do",
	"false",
	"for",
	"forBy",
	"if",
	"inf",
	"loop",
	"nil",
	"pi",
	"protect",
	"super",
	"switch",
	"this",
	"thisFunction",
	"thisMethod",
	"thisProcess",
	"thisThread",
	"topEnvironment",
	"true",
	"try",
	"var",
	"while",
}

// classes are the commonly used class names, UGens included.
var classes = []string{
	"AllpassC",
	"AllpassL",
	"AllpassN",
	"Array",
	"BPF",
	"BRF",
	"Blip",
	"BrownNoise",
	"Buffer",
	"Bus",
	"ClockOsc",
	"CombC",
	"CombL",
	"CombN",
	"CmdPeriod",
	"Crackle",
	"Decay",
	"Decay2",
	"DelayC",
	"DelayL",
	"DelayN",
	"Dictionary",
	"Dust",
	"Dust2",
	"Env",
	"EnvGen",
	"Event",
	"FSinOsc",
	"Formant",
	"FreeVerb",
	"Function",
	"GVerb",
	"Gendy1",
	"Group",
	"HPF",
	"Impulse",
	"In",
	"Integer",
	"Klang",
	"LFNoise0",
	"LFNoise1",
	"LFNoise2",
	"LFPulse",
	"LFSaw",
	"LFTri",
	"LPF",
	"Lag",
	"Latch",
	"Line",
	"List",
	"MIDIIn",
	"MIDIOut",
	"Mix",
	"MouseX",
	"MouseY",
	"Ndef",
	"NetAddr",
	"OSCFunc",
	"Osc",
	"Out",
	"Pan2",
	"PanAz",
	"Pbind",
	"Pdef",
	"Phasor",
	"PinkNoise",
	"PlayBuf",
	"Pmono",
	"Pn",
	"Prand",
	"Pseq",
	"Pseries",
	"Pulse",
	"Pwhite",
	"Pxrand",
	"RHPF",
	"RLPF",
	"RecordBuf",
	"Resonz",
	"Ringz",
	"Routine",
	"SOS",
	"Saw",
	"Server",
	"SinOsc",
	"SoundIn",
	"Spawner",
	"Splay",
	"String",
	"Symbol",
	"Synth",
	"SynthDef",
	"Task",
	"TempoClock",
	"UGen",
	"VarSaw",
	"WhiteNoise",
	"XLine",
}

// methods are the instance/class methods offered for completion.
var methods = []string{
	"add",
	"ar",
	"asStream",
	"at",
	"blend",
	"boot",
	"choose",
	"clip",
	"coin",
	"collect",
	"cpsmidi",
	"defer",
	"do",
	"dup",
	"embedInStream",
	"explin",
	"exprand",
	"fold",
	"fork",
	"free",
	"freeAll",
	"get",
	"interpret",
	"ir",
	"kr",
	"lag",
	"linexp",
	"linlin",
	"loop",
	"madd",
	"map",
	"mean",
	"midicps",
	"midiratio",
	"new",
	"next",
	"normalize",
	"play",
	"plot",
	"post",
	"postln",
	"put",
	"quit",
	"rand",
	"range",
	"read",
	"reboot",
	"record",
	"release",
	"reset",
	"reverse",
	"round",
	"rrand",
	"scope",
	"scramble",
	"select",
	"sendMsg",
	"set",
	"size",
	"stop",
	"sum",
	"trace",
	"value",
	"wait",
	"wchoose",
	"wrap",
	"yield",
}
