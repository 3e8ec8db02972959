package csscolor

import "image/color"

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// named covers the CSS basic colors and the extended names most used in
// themes. Keys are lower case.
var named = map[string]color.RGBA{
	"transparent": {},

	"black":   rgb(0, 0, 0),
	"silver":  rgb(192, 192, 192),
	"gray":    rgb(128, 128, 128),
	"grey":    rgb(128, 128, 128),
	"white":   rgb(255, 255, 255),
	"maroon":  rgb(128, 0, 0),
	"red":     rgb(255, 0, 0),
	"purple":  rgb(128, 0, 128),
	"fuchsia": rgb(255, 0, 255),
	"magenta": rgb(255, 0, 255),
	"green":   rgb(0, 128, 0),
	"lime":    rgb(0, 255, 0),
	"olive":   rgb(128, 128, 0),
	"yellow":  rgb(255, 255, 0),
	"navy":    rgb(0, 0, 128),
	"blue":    rgb(0, 0, 255),
	"teal":    rgb(0, 128, 128),
	"aqua":    rgb(0, 255, 255),
	"cyan":    rgb(0, 255, 255),
	"orange":  rgb(255, 165, 0),

	"aliceblue":       rgb(240, 248, 255),
	"beige":           rgb(245, 245, 220),
	"brown":           rgb(165, 42, 42),
	"coral":           rgb(255, 127, 80),
	"cornflowerblue":  rgb(100, 149, 237),
	"crimson":         rgb(220, 20, 60),
	"darkblue":        rgb(0, 0, 139),
	"darkgray":        rgb(169, 169, 169),
	"darkgrey":        rgb(169, 169, 169),
	"darkgreen":       rgb(0, 100, 0),
	"darkred":         rgb(139, 0, 0),
	"darkslategray":   rgb(47, 79, 79),
	"deepskyblue":     rgb(0, 191, 255),
	"dimgray":         rgb(105, 105, 105),
	"dodgerblue":      rgb(30, 144, 255),
	"firebrick":       rgb(178, 34, 34),
	"gold":            rgb(255, 215, 0),
	"goldenrod":       rgb(218, 165, 32),
	"hotpink":         rgb(255, 105, 180),
	"indigo":          rgb(75, 0, 130),
	"ivory":           rgb(255, 255, 240),
	"khaki":           rgb(240, 230, 140),
	"lavender":        rgb(230, 230, 250),
	"lightblue":       rgb(173, 216, 230),
	"lightgray":       rgb(211, 211, 211),
	"lightgrey":       rgb(211, 211, 211),
	"lightgreen":      rgb(144, 238, 144),
	"lightyellow":     rgb(255, 255, 224),
	"limegreen":       rgb(50, 205, 50),
	"midnightblue":    rgb(25, 25, 112),
	"mintcream":       rgb(245, 255, 250),
	"orangered":       rgb(255, 69, 0),
	"orchid":          rgb(218, 112, 214),
	"pink":            rgb(255, 192, 203),
	"plum":            rgb(221, 160, 221),
	"rebeccapurple":   rgb(102, 51, 153),
	"royalblue":       rgb(65, 105, 225),
	"salmon":          rgb(250, 128, 114),
	"seagreen":        rgb(46, 139, 87),
	"skyblue":         rgb(135, 206, 235),
	"slateblue":       rgb(106, 90, 205),
	"slategray":       rgb(112, 128, 144),
	"steelblue":       rgb(70, 130, 180),
	"tan":             rgb(210, 180, 140),
	"tomato":          rgb(255, 99, 71),
	"turquoise":       rgb(64, 224, 208),
	"violet":          rgb(238, 130, 238),
	"wheat":           rgb(245, 222, 179),
	"whitesmoke":      rgb(245, 245, 245),
	"yellowgreen":     rgb(154, 205, 50),
	"mediumseagreen":  rgb(60, 179, 113),
	"mediumpurple":    rgb(147, 112, 219),
	"lightslategray":  rgb(119, 136, 153),
	"darkorange":      rgb(255, 140, 0),
	"darkviolet":      rgb(148, 0, 211),
	"chartreuse":      rgb(127, 255, 0),
	"chocolate":       rgb(210, 105, 30),
	"sienna":          rgb(160, 82, 45),
	"snow":            rgb(255, 250, 250),
	"honeydew":        rgb(240, 255, 240),
	"linen":           rgb(250, 240, 230),
	"gainsboro":       rgb(220, 220, 220),
	"ghostwhite":      rgb(248, 248, 255),
	"mediumblue":      rgb(0, 0, 205),
	"darkcyan":        rgb(0, 139, 139),
	"darkmagenta":     rgb(139, 0, 139),
	"darkolivegreen":  rgb(85, 107, 47),
	"darkslateblue":   rgb(72, 61, 139),
	"lightcoral":      rgb(240, 128, 128),
	"lightsalmon":     rgb(255, 160, 122),
	"lightseagreen":   rgb(32, 178, 170),
	"lightskyblue":    rgb(135, 206, 250),
	"lightsteelblue":  rgb(176, 196, 222),
	"palegreen":       rgb(152, 251, 152),
	"paleturquoise":   rgb(175, 238, 238),
	"powderblue":      rgb(176, 224, 230),
	"springgreen":     rgb(0, 255, 127),
	"mediumvioletred": rgb(199, 21, 133),
}
