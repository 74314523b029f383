package unicodeblock

// Well-known blocks referenced by the preprocessing pipeline.
var (
	BasicLatin                = Block{Name: "Basic Latin", First: 0x0000, Last: 0x007F}
	Latin1Supplement          = Block{Name: "Latin-1 Supplement", First: 0x0080, Last: 0x00FF}
	CombiningDiacriticalMarks = Block{Name: "Combining Diacritical Marks", First: 0x0300, Last: 0x036F}
	Cyrillic                  = Block{Name: "Cyrillic", First: 0x0400, Last: 0x04FF}
	Arabic                    = Block{Name: "Arabic", First: 0x0600, Last: 0x06FF}
	LatinExtendedAdditional   = Block{Name: "Latin Extended Additional", First: 0x1E00, Last: 0x1EFF}
	GeneralPunctuation        = Block{Name: "General Punctuation", First: 0x2000, Last: 0x206F}
	Hiragana                  = Block{Name: "Hiragana", First: 0x3040, Last: 0x309F}
	Katakana                  = Block{Name: "Katakana", First: 0x30A0, Last: 0x30FF}
	Bopomofo                  = Block{Name: "Bopomofo", First: 0x3100, Last: 0x312F}
	BopomofoExtended          = Block{Name: "Bopomofo Extended", First: 0x31A0, Last: 0x31BF}
	CJKUnifiedIdeographs      = Block{Name: "CJK Unified Ideographs", First: 0x4E00, Last: 0x9FFF}
	HangulSyllables           = Block{Name: "Hangul Syllables", First: 0xAC00, Last: 0xD7AF}
	HalfwidthFullwidthForms   = Block{Name: "Halfwidth and Fullwidth Forms", First: 0xFF00, Last: 0xFFEF}
)

// blocks is sorted by First and contains no overlapping ranges.
var blocks = []Block{
	BasicLatin,
	Latin1Supplement,
	{Name: "Latin Extended-A", First: 0x0100, Last: 0x017F},
	{Name: "Latin Extended-B", First: 0x0180, Last: 0x024F},
	{Name: "IPA Extensions", First: 0x0250, Last: 0x02AF},
	{Name: "Spacing Modifier Letters", First: 0x02B0, Last: 0x02FF},
	CombiningDiacriticalMarks,
	{Name: "Greek and Coptic", First: 0x0370, Last: 0x03FF},
	Cyrillic,
	{Name: "Cyrillic Supplement", First: 0x0500, Last: 0x052F},
	{Name: "Armenian", First: 0x0530, Last: 0x058F},
	{Name: "Hebrew", First: 0x0590, Last: 0x05FF},
	Arabic,
	{Name: "Syriac", First: 0x0700, Last: 0x074F},
	{Name: "Arabic Supplement", First: 0x0750, Last: 0x077F},
	{Name: "Thaana", First: 0x0780, Last: 0x07BF},
	{Name: "NKo", First: 0x07C0, Last: 0x07FF},
	{Name: "Samaritan", First: 0x0800, Last: 0x083F},
	{Name: "Mandaic", First: 0x0840, Last: 0x085F},
	{Name: "Syriac Supplement", First: 0x0860, Last: 0x086F},
	{Name: "Arabic Extended-B", First: 0x0870, Last: 0x089F},
	{Name: "Arabic Extended-A", First: 0x08A0, Last: 0x08FF},
	{Name: "Devanagari", First: 0x0900, Last: 0x097F},
	{Name: "Bengali", First: 0x0980, Last: 0x09FF},
	{Name: "Gurmukhi", First: 0x0A00, Last: 0x0A7F},
	{Name: "Gujarati", First: 0x0A80, Last: 0x0AFF},
	{Name: "Oriya", First: 0x0B00, Last: 0x0B7F},
	{Name: "Tamil", First: 0x0B80, Last: 0x0BFF},
	{Name: "Telugu", First: 0x0C00, Last: 0x0C7F},
	{Name: "Kannada", First: 0x0C80, Last: 0x0CFF},
	{Name: "Malayalam", First: 0x0D00, Last: 0x0D7F},
	{Name: "Sinhala", First: 0x0D80, Last: 0x0DFF},
	{Name: "Thai", First: 0x0E00, Last: 0x0E7F},
	{Name: "Lao", First: 0x0E80, Last: 0x0EFF},
	{Name: "Tibetan", First: 0x0F00, Last: 0x0FFF},
	{Name: "Myanmar", First: 0x1000, Last: 0x109F},
	{Name: "Georgian", First: 0x10A0, Last: 0x10FF},
	{Name: "Hangul Jamo", First: 0x1100, Last: 0x11FF},
	{Name: "Ethiopic", First: 0x1200, Last: 0x137F},
	{Name: "Ethiopic Supplement", First: 0x1380, Last: 0x139F},
	{Name: "Cherokee", First: 0x13A0, Last: 0x13FF},
	{Name: "Unified Canadian Aboriginal Syllabics", First: 0x1400, Last: 0x167F},
	{Name: "Ogham", First: 0x1680, Last: 0x169F},
	{Name: "Runic", First: 0x16A0, Last: 0x16FF},
	{Name: "Tagalog", First: 0x1700, Last: 0x171F},
	{Name: "Hanunoo", First: 0x1720, Last: 0x173F},
	{Name: "Buhid", First: 0x1740, Last: 0x175F},
	{Name: "Tagbanwa", First: 0x1760, Last: 0x177F},
	{Name: "Khmer", First: 0x1780, Last: 0x17FF},
	{Name: "Mongolian", First: 0x1800, Last: 0x18AF},
	{Name: "Unified Canadian Aboriginal Syllabics Extended", First: 0x18B0, Last: 0x18FF},
	{Name: "Limbu", First: 0x1900, Last: 0x194F},
	{Name: "Tai Le", First: 0x1950, Last: 0x197F},
	{Name: "New Tai Lue", First: 0x1980, Last: 0x19DF},
	{Name: "Khmer Symbols", First: 0x19E0, Last: 0x19FF},
	{Name: "Buginese", First: 0x1A00, Last: 0x1A1F},
	{Name: "Tai Tham", First: 0x1A20, Last: 0x1AAF},
	{Name: "Combining Diacritical Marks Extended", First: 0x1AB0, Last: 0x1AFF},
	{Name: "Balinese", First: 0x1B00, Last: 0x1B7F},
	{Name: "Sundanese", First: 0x1B80, Last: 0x1BBF},
	{Name: "Batak", First: 0x1BC0, Last: 0x1BFF},
	{Name: "Lepcha", First: 0x1C00, Last: 0x1C4F},
	{Name: "Ol Chiki", First: 0x1C50, Last: 0x1C7F},
	{Name: "Cyrillic Extended-C", First: 0x1C80, Last: 0x1C8F},
	{Name: "Georgian Extended", First: 0x1C90, Last: 0x1CBF},
	{Name: "Sundanese Supplement", First: 0x1CC0, Last: 0x1CCF},
	{Name: "Vedic Extensions", First: 0x1CD0, Last: 0x1CFF},
	{Name: "Phonetic Extensions", First: 0x1D00, Last: 0x1D7F},
	{Name: "Phonetic Extensions Supplement", First: 0x1D80, Last: 0x1DBF},
	{Name: "Combining Diacritical Marks Supplement", First: 0x1DC0, Last: 0x1DFF},
	LatinExtendedAdditional,
	{Name: "Greek Extended", First: 0x1F00, Last: 0x1FFF},
	GeneralPunctuation,
	{Name: "Superscripts and Subscripts", First: 0x2070, Last: 0x209F},
	{Name: "Currency Symbols", First: 0x20A0, Last: 0x20CF},
	{Name: "Combining Diacritical Marks for Symbols", First: 0x20D0, Last: 0x20FF},
	{Name: "Letterlike Symbols", First: 0x2100, Last: 0x214F},
	{Name: "Number Forms", First: 0x2150, Last: 0x218F},
	{Name: "Arrows", First: 0x2190, Last: 0x21FF},
	{Name: "Mathematical Operators", First: 0x2200, Last: 0x22FF},
	{Name: "Miscellaneous Technical", First: 0x2300, Last: 0x23FF},
	{Name: "Control Pictures", First: 0x2400, Last: 0x243F},
	{Name: "Optical Character Recognition", First: 0x2440, Last: 0x245F},
	{Name: "Enclosed Alphanumerics", First: 0x2460, Last: 0x24FF},
	{Name: "Box Drawing", First: 0x2500, Last: 0x257F},
	{Name: "Block Elements", First: 0x2580, Last: 0x259F},
	{Name: "Geometric Shapes", First: 0x25A0, Last: 0x25FF},
	{Name: "Miscellaneous Symbols", First: 0x2600, Last: 0x26FF},
	{Name: "Dingbats", First: 0x2700, Last: 0x27BF},
	{Name: "Miscellaneous Mathematical Symbols-A", First: 0x27C0, Last: 0x27EF},
	{Name: "Supplemental Arrows-A", First: 0x27F0, Last: 0x27FF},
	{Name: "Braille Patterns", First: 0x2800, Last: 0x28FF},
	{Name: "Supplemental Arrows-B", First: 0x2900, Last: 0x297F},
	{Name: "Miscellaneous Mathematical Symbols-B", First: 0x2980, Last: 0x29FF},
	{Name: "Supplemental Mathematical Operators", First: 0x2A00, Last: 0x2AFF},
	{Name: "Miscellaneous Symbols and Arrows", First: 0x2B00, Last: 0x2BFF},
	{Name: "Glagolitic", First: 0x2C00, Last: 0x2C5F},
	{Name: "Latin Extended-C", First: 0x2C60, Last: 0x2C7F},
	{Name: "Coptic", First: 0x2C80, Last: 0x2CFF},
	{Name: "Georgian Supplement", First: 0x2D00, Last: 0x2D2F},
	{Name: "Tifinagh", First: 0x2D30, Last: 0x2D7F},
	{Name: "Ethiopic Extended", First: 0x2D80, Last: 0x2DDF},
	{Name: "Cyrillic Extended-A", First: 0x2DE0, Last: 0x2DFF},
	{Name: "Supplemental Punctuation", First: 0x2E00, Last: 0x2E7F},
	{Name: "CJK Radicals Supplement", First: 0x2E80, Last: 0x2EFF},
	{Name: "Kangxi Radicals", First: 0x2F00, Last: 0x2FDF},
	{Name: "Ideographic Description Characters", First: 0x2FF0, Last: 0x2FFF},
	{Name: "CJK Symbols and Punctuation", First: 0x3000, Last: 0x303F},
	Hiragana,
	Katakana,
	Bopomofo,
	{Name: "Hangul Compatibility Jamo", First: 0x3130, Last: 0x318F},
	{Name: "Kanbun", First: 0x3190, Last: 0x319F},
	BopomofoExtended,
	{Name: "CJK Strokes", First: 0x31C0, Last: 0x31EF},
	{Name: "Katakana Phonetic Extensions", First: 0x31F0, Last: 0x31FF},
	{Name: "Enclosed CJK Letters and Months", First: 0x3200, Last: 0x32FF},
	{Name: "CJK Compatibility", First: 0x3300, Last: 0x33FF},
	{Name: "CJK Unified Ideographs Extension A", First: 0x3400, Last: 0x4DBF},
	{Name: "Yijing Hexagram Symbols", First: 0x4DC0, Last: 0x4DFF},
	CJKUnifiedIdeographs,
	{Name: "Yi Syllables", First: 0xA000, Last: 0xA48F},
	{Name: "Yi Radicals", First: 0xA490, Last: 0xA4CF},
	{Name: "Lisu", First: 0xA4D0, Last: 0xA4FF},
	{Name: "Vai", First: 0xA500, Last: 0xA63F},
	{Name: "Cyrillic Extended-B", First: 0xA640, Last: 0xA69F},
	{Name: "Bamum", First: 0xA6A0, Last: 0xA6FF},
	{Name: "Modifier Tone Letters", First: 0xA700, Last: 0xA71F},
	{Name: "Latin Extended-D", First: 0xA720, Last: 0xA7FF},
	{Name: "Syloti Nagri", First: 0xA800, Last: 0xA82F},
	{Name: "Common Indic Number Forms", First: 0xA830, Last: 0xA83F},
	{Name: "Phags-pa", First: 0xA840, Last: 0xA87F},
	{Name: "Saurashtra", First: 0xA880, Last: 0xA8DF},
	{Name: "Devanagari Extended", First: 0xA8E0, Last: 0xA8FF},
	{Name: "Kayah Li", First: 0xA900, Last: 0xA92F},
	{Name: "Rejang", First: 0xA930, Last: 0xA95F},
	{Name: "Hangul Jamo Extended-A", First: 0xA960, Last: 0xA97F},
	{Name: "Javanese", First: 0xA980, Last: 0xA9DF},
	{Name: "Myanmar Extended-B", First: 0xA9E0, Last: 0xA9FF},
	{Name: "Cham", First: 0xAA00, Last: 0xAA5F},
	{Name: "Myanmar Extended-A", First: 0xAA60, Last: 0xAA7F},
	{Name: "Tai Viet", First: 0xAA80, Last: 0xAADF},
	{Name: "Meetei Mayek Extensions", First: 0xAAE0, Last: 0xAAFF},
	{Name: "Ethiopic Extended-A", First: 0xAB00, Last: 0xAB2F},
	{Name: "Latin Extended-E", First: 0xAB30, Last: 0xAB6F},
	{Name: "Cherokee Supplement", First: 0xAB70, Last: 0xABBF},
	{Name: "Meetei Mayek", First: 0xABC0, Last: 0xABFF},
	HangulSyllables,
	{Name: "Hangul Jamo Extended-B", First: 0xD7B0, Last: 0xD7FF},
	{Name: "High Surrogates", First: 0xD800, Last: 0xDB7F},
	{Name: "High Private Use Surrogates", First: 0xDB80, Last: 0xDBFF},
	{Name: "Low Surrogates", First: 0xDC00, Last: 0xDFFF},
	{Name: "Private Use Area", First: 0xE000, Last: 0xF8FF},
	{Name: "CJK Compatibility Ideographs", First: 0xF900, Last: 0xFAFF},
	{Name: "Alphabetic Presentation Forms", First: 0xFB00, Last: 0xFB4F},
	{Name: "Arabic Presentation Forms-A", First: 0xFB50, Last: 0xFDFF},
	{Name: "Variation Selectors", First: 0xFE00, Last: 0xFE0F},
	{Name: "Vertical Forms", First: 0xFE10, Last: 0xFE1F},
	{Name: "Combining Half Marks", First: 0xFE20, Last: 0xFE2F},
	{Name: "CJK Compatibility Forms", First: 0xFE30, Last: 0xFE4F},
	{Name: "Small Form Variants", First: 0xFE50, Last: 0xFE6F},
	{Name: "Arabic Presentation Forms-B", First: 0xFE70, Last: 0xFEFF},
	HalfwidthFullwidthForms,
	{Name: "Specials", First: 0xFFF0, Last: 0xFFFF},
	{Name: "Linear B Syllabary", First: 0x10000, Last: 0x1007F},
	{Name: "Linear B Ideograms", First: 0x10080, Last: 0x100FF},
	{Name: "Aegean Numbers", First: 0x10100, Last: 0x1013F},
	{Name: "Old Italic", First: 0x10300, Last: 0x1032F},
	{Name: "Gothic", First: 0x10330, Last: 0x1034F},
	{Name: "Ugaritic", First: 0x10380, Last: 0x1039F},
	{Name: "Old Persian", First: 0x103A0, Last: 0x103DF},
	{Name: "Deseret", First: 0x10400, Last: 0x1044F},
	{Name: "Shavian", First: 0x10450, Last: 0x1047F},
	{Name: "Osmanya", First: 0x10480, Last: 0x104AF},
	{Name: "Cypriot Syllabary", First: 0x10800, Last: 0x1083F},
	{Name: "Mathematical Alphanumeric Symbols", First: 0x1D400, Last: 0x1D7FF},
	{Name: "Mahjong Tiles", First: 0x1F000, Last: 0x1F02F},
	{Name: "Miscellaneous Symbols and Pictographs", First: 0x1F300, Last: 0x1F5FF},
	{Name: "Emoticons", First: 0x1F600, Last: 0x1F64F},
	{Name: "Transport and Map Symbols", First: 0x1F680, Last: 0x1F6FF},
	{Name: "Supplemental Symbols and Pictographs", First: 0x1F900, Last: 0x1F9FF},
	{Name: "CJK Unified Ideographs Extension B", First: 0x20000, Last: 0x2A6DF},
	{Name: "CJK Unified Ideographs Extension C", First: 0x2A700, Last: 0x2B73F},
	{Name: "CJK Unified Ideographs Extension D", First: 0x2B740, Last: 0x2B81F},
	{Name: "CJK Unified Ideographs Extension E", First: 0x2B820, Last: 0x2CEAF},
	{Name: "CJK Unified Ideographs Extension F", First: 0x2CEB0, Last: 0x2EBEF},
	{Name: "CJK Compatibility Ideographs Supplement", First: 0x2F800, Last: 0x2FA1F},
	{Name: "CJK Unified Ideographs Extension G", First: 0x30000, Last: 0x3134F},
	{Name: "Tags", First: 0xE0000, Last: 0xE007F},
	{Name: "Variation Selectors Supplement", First: 0xE0100, Last: 0xE01EF},
	{Name: "Supplementary Private Use Area-A", First: 0xF0000, Last: 0xFFFFF},
	{Name: "Supplementary Private Use Area-B", First: 0x100000, Last: 0x10FFFF},
}
