package unidecode

// asciiSpellings maps code points whose ASCII form is not recoverable by
// NFD decomposition: ligatures, barred and crossed letters, typographic
// punctuation, and symbols with a conventional ASCII spelling.
var asciiSpellings = map[rune]string{
	// Ligatures and special Latin letters.
	'æ': "ae",
	'Æ': "AE",
	'œ': "oe",
	'Œ': "OE",
	'ß': "ss",
	'ẞ': "SS",
	'ð': "d",
	'Ð': "D",
	'þ': "th",
	'Þ': "TH",
	'ø': "o",
	'Ø': "O",
	'đ': "d",
	'Đ': "D",
	'ħ': "h",
	'Ħ': "H",
	'ł': "l",
	'Ł': "L",
	'ŋ': "ng",
	'Ŋ': "NG",
	'ŧ': "t",
	'Ŧ': "T",
	'ı': "i",
	'ĸ': "k",
	'ſ': "s",
	'ǆ': "dz",
	'ǉ': "lj",
	'ǌ': "nj",
	'ɖ': "d",
	'ƒ': "f",
	'Ƒ': "F",

	// Typographic punctuation.
	'‘': "'",
	'’': "'",
	'‚': "'",
	'‛': "'",
	'“': "\"",
	'”': "\"",
	'„': "\"",
	'′': "'",
	'″': "\"",
	'‹': "<",
	'›': ">",
	'«': "\"",
	'»': "\"",
	'–': "-",
	'—': "--",
	'―': "--",
	'−': "-",
	'…': "...",
	'•': "*",
	'·': " ",
	' ': " ", // no-break space
	'⁄': "/",

	// Symbols with conventional spellings.
	'©': "(c)",
	'®': "(r)",
	'™': "(tm)",
	'×': "x",
	'±': "+-",
	'¹': "1",
	'²': "2",
	'³': "3",
	'ª': "a",
	'º': "o",
	'№': "No",

	// Vulgar fractions, numeric form. The pipeline's fraction tables run
	// first and spell these out; this is the standalone fallback.
	'½': "1/2",
	'¼': "1/4",
	'¾': "3/4",
	'⅓': "1/3",
	'⅔': "2/3",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
}
