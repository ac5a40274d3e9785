package keymap

// legacy (pre-Unicode) X keysyms outside Latin-1, from keysymdef.h
var keySymToUCS4 = map[uint32]KeyID{
	0x01a1: 0x0104, // latin capital letter a with ogonek
	0x01a2: 0x02D8, // breve
	0x01a3: 0x0141, // latin capital letter l with stroke
	0x01a5: 0x013D, // latin capital letter l with caron
	0x01a6: 0x015A, // latin capital letter s with acute
	0x01a9: 0x0160, // latin capital letter s with caron
	0x01aa: 0x015E, // latin capital letter s with cedilla
	0x01ab: 0x0164, // latin capital letter t with caron
	0x01ac: 0x0179, // latin capital letter z with acute
	0x01ae: 0x017D, // latin capital letter z with caron
	0x01af: 0x017B, // latin capital letter z with dot above
	0x01b1: 0x0105, // latin small letter a with ogonek
	0x01b2: 0x02DB, // ogonek
	0x01b3: 0x0142, // latin small letter l with stroke
	0x01b5: 0x013E, // latin small letter l with caron
	0x01b6: 0x015B, // latin small letter s with acute
	0x01b7: 0x02C7, // caron
	0x01b9: 0x0161, // latin small letter s with caron
	0x01ba: 0x015F, // latin small letter s with cedilla
	0x01bb: 0x0165, // latin small letter t with caron
	0x01bc: 0x017A, // latin small letter z with acute
	0x01bd: 0x02DD, // double acute accent
	0x01be: 0x017E, // latin small letter z with caron
	0x01bf: 0x017C, // latin small letter z with dot above
	0x01c0: 0x0154, // latin capital letter r with acute
	0x01c3: 0x0102, // latin capital letter a with breve
	0x01c5: 0x0139, // latin capital letter l with acute
	0x01c6: 0x0106, // latin capital letter c with acute
	0x01c8: 0x010C, // latin capital letter c with caron
	0x01ca: 0x0118, // latin capital letter e with ogonek
	0x01cc: 0x011A, // latin capital letter e with caron
	0x01cf: 0x010E, // latin capital letter d with caron
	0x01d0: 0x0110, // latin capital letter d with stroke
	0x01d1: 0x0143, // latin capital letter n with acute
	0x01d2: 0x0147, // latin capital letter n with caron
	0x01d5: 0x0150, // latin capital letter o with double acute
	0x01d8: 0x0158, // latin capital letter r with caron
	0x01d9: 0x016E, // latin capital letter u with ring above
	0x01db: 0x0170, // latin capital letter u with double acute
	0x01de: 0x0162, // latin capital letter t with cedilla
	0x01e0: 0x0155, // latin small letter r with acute
	0x01e3: 0x0103, // latin small letter a with breve
	0x01e5: 0x013A, // latin small letter l with acute
	0x01e6: 0x0107, // latin small letter c with acute
	0x01e8: 0x010D, // latin small letter c with caron
	0x01ea: 0x0119, // latin small letter e with ogonek
	0x01ec: 0x011B, // latin small letter e with caron
	0x01ef: 0x010F, // latin small letter d with caron
	0x01f0: 0x0111, // latin small letter d with stroke
	0x01f1: 0x0144, // latin small letter n with acute
	0x01f2: 0x0148, // latin small letter n with caron
	0x01f5: 0x0151, // latin small letter o with double acute
	0x01f8: 0x0159, // latin small letter r with caron
	0x01f9: 0x016F, // latin small letter u with ring above
	0x01fb: 0x0171, // latin small letter u with double acute
	0x01fe: 0x0163, // latin small letter t with cedilla
	0x01ff: 0x02D9, // dot above
	0x02a1: 0x0126, // latin capital letter h with stroke
	0x02a6: 0x0124, // latin capital letter h with circumflex
	0x02a9: 0x0130, // latin capital letter i with dot above
	0x02ab: 0x011E, // latin capital letter g with breve
	0x02ac: 0x0134, // latin capital letter j with circumflex
	0x02b1: 0x0127, // latin small letter h with stroke
	0x02b6: 0x0125, // latin small letter h with circumflex
	0x02b9: 0x0131, // latin small letter dotless i
	0x02bb: 0x011F, // latin small letter g with breve
	0x02bc: 0x0135, // latin small letter j with circumflex
	0x02c5: 0x010A, // latin capital letter c with dot above
	0x02c6: 0x0108, // latin capital letter c with circumflex
	0x02d5: 0x0120, // latin capital letter g with dot above
	0x02d8: 0x011C, // latin capital letter g with circumflex
	0x02dd: 0x016C, // latin capital letter u with breve
	0x02de: 0x015C, // latin capital letter s with circumflex
	0x02e5: 0x010B, // latin small letter c with dot above
	0x02e6: 0x0109, // latin small letter c with circumflex
	0x02f5: 0x0121, // latin small letter g with dot above
	0x02f8: 0x011D, // latin small letter g with circumflex
	0x02fd: 0x016D, // latin small letter u with breve
	0x02fe: 0x015D, // latin small letter s with circumflex
	0x03a2: 0x0138, // latin small letter kra
	0x03a3: 0x0156, // latin capital letter r with cedilla
	0x03a5: 0x0128, // latin capital letter i with tilde
	0x03a6: 0x013B, // latin capital letter l with cedilla
	0x03aa: 0x0112, // latin capital letter e with macron
	0x03ab: 0x0122, // latin capital letter g with cedilla
	0x03ac: 0x0166, // latin capital letter t with stroke
	0x03b3: 0x0157, // latin small letter r with cedilla
	0x03b5: 0x0129, // latin small letter i with tilde
	0x03b6: 0x013C, // latin small letter l with cedilla
	0x03ba: 0x0113, // latin small letter e with macron
	0x03bb: 0x0123, // latin small letter g with cedilla
	0x03bc: 0x0167, // latin small letter t with stroke
	0x03bd: 0x014A, // latin capital letter eng
	0x03bf: 0x014B, // latin small letter eng
	0x03c0: 0x0100, // latin capital letter a with macron
	0x03c7: 0x012E, // latin capital letter i with ogonek
	0x03cc: 0x0116, // latin capital letter e with dot above
	0x03cf: 0x012A, // latin capital letter i with macron
	0x03d1: 0x0145, // latin capital letter n with cedilla
	0x03d2: 0x014C, // latin capital letter o with macron
	0x03d3: 0x0136, // latin capital letter k with cedilla
	0x03d9: 0x0172, // latin capital letter u with ogonek
	0x03dd: 0x0168, // latin capital letter u with tilde
	0x03de: 0x016A, // latin capital letter u with macron
	0x03e0: 0x0101, // latin small letter a with macron
	0x03e7: 0x012F, // latin small letter i with ogonek
	0x03ec: 0x0117, // latin small letter e with dot above
	0x03ef: 0x012B, // latin small letter i with macron
	0x03f1: 0x0146, // latin small letter n with cedilla
	0x03f2: 0x014D, // latin small letter o with macron
	0x03f3: 0x0137, // latin small letter k with cedilla
	0x03f9: 0x0173, // latin small letter u with ogonek
	0x03fd: 0x0169, // latin small letter u with tilde
	0x03fe: 0x016B, // latin small letter u with macron
	0x047e: 0x203E, // overline
	0x04a1: 0x3002, // ideographic full stop
	0x04a2: 0x300C, // left corner bracket
	0x04a3: 0x300D, // right corner bracket
	0x04a4: 0x3001, // ideographic comma
	0x04a5: 0x30FB, // katakana middle dot
	0x04a6: 0x30F2, // katakana letter wo
	0x04a7: 0x30A1, // katakana letter small a
	0x04a8: 0x30A3, // katakana letter small i
	0x04a9: 0x30A5, // katakana letter small u
	0x04aa: 0x30A7, // katakana letter small e
	0x04ab: 0x30A9, // katakana letter small o
	0x04ac: 0x30E3, // katakana letter small ya
	0x04ad: 0x30E5, // katakana letter small yu
	0x04ae: 0x30E7, // katakana letter small yo
	0x04af: 0x30C3, // katakana letter small tu
	0x04b0: 0x30FC, // katakana-hiragana prolonged sound mark
	0x04b1: 0x30A2, // katakana letter a
	0x04b2: 0x30A4, // katakana letter i
	0x04b3: 0x30A6, // katakana letter u
	0x04b4: 0x30A8, // katakana letter e
	0x04b5: 0x30AA, // katakana letter o
	0x04b6: 0x30AB, // katakana letter ka
	0x04b7: 0x30AD, // katakana letter ki
	0x04b8: 0x30AF, // katakana letter ku
	0x04b9: 0x30B1, // katakana letter ke
	0x04ba: 0x30B3, // katakana letter ko
	0x04bb: 0x30B5, // katakana letter sa
	0x04bc: 0x30B7, // katakana letter si
	0x04bd: 0x30B9, // katakana letter su
	0x04be: 0x30BB, // katakana letter se
	0x04bf: 0x30BD, // katakana letter so
	0x04c0: 0x30BF, // katakana letter ta
	0x04c1: 0x30C1, // katakana letter ti
	0x04c2: 0x30C4, // katakana letter tu
	0x04c3: 0x30C6, // katakana letter te
	0x04c4: 0x30C8, // katakana letter to
	0x04c5: 0x30CA, // katakana letter na
	0x04c6: 0x30CB, // katakana letter ni
	0x04c7: 0x30CC, // katakana letter nu
	0x04c8: 0x30CD, // katakana letter ne
	0x04c9: 0x30CE, // katakana letter no
	0x04ca: 0x30CF, // katakana letter ha
	0x04cb: 0x30D2, // katakana letter hi
	0x04cc: 0x30D5, // katakana letter hu
	0x04cd: 0x30D8, // katakana letter he
	0x04ce: 0x30DB, // katakana letter ho
	0x04cf: 0x30DE, // katakana letter ma
	0x04d0: 0x30DF, // katakana letter mi
	0x04d1: 0x30E0, // katakana letter mu
	0x04d2: 0x30E1, // katakana letter me
	0x04d3: 0x30E2, // katakana letter mo
	0x04d4: 0x30E4, // katakana letter ya
	0x04d5: 0x30E6, // katakana letter yu
	0x04d6: 0x30E8, // katakana letter yo
	0x04d7: 0x30E9, // katakana letter ra
	0x04d8: 0x30EA, // katakana letter ri
	0x04d9: 0x30EB, // katakana letter ru
	0x04da: 0x30EC, // katakana letter re
	0x04db: 0x30ED, // katakana letter ro
	0x04dc: 0x30EF, // katakana letter wa
	0x04dd: 0x30F3, // katakana letter n
	0x04de: 0x309B, // katakana-hiragana voiced sound mark
	0x04df: 0x309C, // katakana-hiragana semi-voiced sound mark
	0x05ac: 0x060C, // arabic comma
	0x05bb: 0x061B, // arabic semicolon
	0x05bf: 0x061F, // arabic question mark
	0x05c1: 0x0621, // arabic letter hamza
	0x05c2: 0x0622, // arabic letter alef with madda above
	0x05c3: 0x0623, // arabic letter alef with hamza above
	0x05c4: 0x0624, // arabic letter waw with hamza above
	0x05c5: 0x0625, // arabic letter alef with hamza below
	0x05c6: 0x0626, // arabic letter yeh with hamza above
	0x05c7: 0x0627, // arabic letter alef
	0x05c8: 0x0628, // arabic letter beh
	0x05c9: 0x0629, // arabic letter teh marbuta
	0x05ca: 0x062A, // arabic letter teh
	0x05cb: 0x062B, // arabic letter theh
	0x05cc: 0x062C, // arabic letter jeem
	0x05cd: 0x062D, // arabic letter hah
	0x05ce: 0x062E, // arabic letter khah
	0x05cf: 0x062F, // arabic letter dal
	0x05d0: 0x0630, // arabic letter thal
	0x05d1: 0x0631, // arabic letter reh
	0x05d2: 0x0632, // arabic letter zain
	0x05d3: 0x0633, // arabic letter seen
	0x05d4: 0x0634, // arabic letter sheen
	0x05d5: 0x0635, // arabic letter sad
	0x05d6: 0x0636, // arabic letter dad
	0x05d7: 0x0637, // arabic letter tah
	0x05d8: 0x0638, // arabic letter zah
	0x05d9: 0x0639, // arabic letter ain
	0x05da: 0x063A, // arabic letter ghain
	0x05e0: 0x0640, // arabic tatweel
	0x05e1: 0x0641, // arabic letter feh
	0x05e2: 0x0642, // arabic letter qaf
	0x05e3: 0x0643, // arabic letter kaf
	0x05e4: 0x0644, // arabic letter lam
	0x05e5: 0x0645, // arabic letter meem
	0x05e6: 0x0646, // arabic letter noon
	0x05e7: 0x0647, // arabic letter heh
	0x05e8: 0x0648, // arabic letter waw
	0x05e9: 0x0649, // arabic letter alef maksura
	0x05ea: 0x064A, // arabic letter yeh
	0x05eb: 0x064B, // arabic fathatan
	0x05ec: 0x064C, // arabic dammatan
	0x05ed: 0x064D, // arabic kasratan
	0x05ee: 0x064E, // arabic fatha
	0x05ef: 0x064F, // arabic damma
	0x05f0: 0x0650, // arabic kasra
	0x05f1: 0x0651, // arabic shadda
	0x05f2: 0x0652, // arabic sukun
	0x06a1: 0x0452, // cyrillic small letter dje
	0x06a2: 0x0453, // cyrillic small letter gje
	0x06a3: 0x0451, // cyrillic small letter io
	0x06a4: 0x0454, // cyrillic small letter ukrainian ie
	0x06a5: 0x0455, // cyrillic small letter dze
	0x06a6: 0x0456, // cyrillic small letter byelorussian-ukrainian i
	0x06a7: 0x0457, // cyrillic small letter yi
	0x06a8: 0x0458, // cyrillic small letter je
	0x06a9: 0x0459, // cyrillic small letter lje
	0x06aa: 0x045A, // cyrillic small letter nje
	0x06ab: 0x045B, // cyrillic small letter tshe
	0x06ac: 0x045C, // cyrillic small letter kje
	0x06ad: 0x0491, // cyrillic small letter ghe with upturn
	0x06ae: 0x045E, // cyrillic small letter short u
	0x06af: 0x045F, // cyrillic small letter dzhe
	0x06b0: 0x2116, // numero sign
	0x06b1: 0x0402, // cyrillic capital letter dje
	0x06b2: 0x0403, // cyrillic capital letter gje
	0x06b3: 0x0401, // cyrillic capital letter io
	0x06b4: 0x0404, // cyrillic capital letter ukrainian ie
	0x06b5: 0x0405, // cyrillic capital letter dze
	0x06b6: 0x0406, // cyrillic capital letter byelorussian-ukrainian i
	0x06b7: 0x0407, // cyrillic capital letter yi
	0x06b8: 0x0408, // cyrillic capital letter je
	0x06b9: 0x0409, // cyrillic capital letter lje
	0x06ba: 0x040A, // cyrillic capital letter nje
	0x06bb: 0x040B, // cyrillic capital letter tshe
	0x06bc: 0x040C, // cyrillic capital letter kje
	0x06bd: 0x0490, // cyrillic capital letter ghe with upturn
	0x06be: 0x040E, // cyrillic capital letter short u
	0x06bf: 0x040F, // cyrillic capital letter dzhe
	0x06c0: 0x044E, // cyrillic small letter yu
	0x06c1: 0x0430, // cyrillic small letter a
	0x06c2: 0x0431, // cyrillic small letter be
	0x06c3: 0x0446, // cyrillic small letter tse
	0x06c4: 0x0434, // cyrillic small letter de
	0x06c5: 0x0435, // cyrillic small letter ie
	0x06c6: 0x0444, // cyrillic small letter ef
	0x06c7: 0x0433, // cyrillic small letter ghe
	0x06c8: 0x0445, // cyrillic small letter ha
	0x06c9: 0x0438, // cyrillic small letter i
	0x06ca: 0x0439, // cyrillic small letter short i
	0x06cb: 0x043A, // cyrillic small letter ka
	0x06cc: 0x043B, // cyrillic small letter el
	0x06cd: 0x043C, // cyrillic small letter em
	0x06ce: 0x043D, // cyrillic small letter en
	0x06cf: 0x043E, // cyrillic small letter o
	0x06d0: 0x043F, // cyrillic small letter pe
	0x06d1: 0x044F, // cyrillic small letter ya
	0x06d2: 0x0440, // cyrillic small letter er
	0x06d3: 0x0441, // cyrillic small letter es
	0x06d4: 0x0442, // cyrillic small letter te
	0x06d5: 0x0443, // cyrillic small letter u
	0x06d6: 0x0436, // cyrillic small letter zhe
	0x06d7: 0x0432, // cyrillic small letter ve
	0x06d8: 0x044C, // cyrillic small letter soft sign
	0x06d9: 0x044B, // cyrillic small letter yeru
	0x06da: 0x0437, // cyrillic small letter ze
	0x06db: 0x0448, // cyrillic small letter sha
	0x06dc: 0x044D, // cyrillic small letter e
	0x06dd: 0x0449, // cyrillic small letter shcha
	0x06de: 0x0447, // cyrillic small letter che
	0x06df: 0x044A, // cyrillic small letter hard sign
	0x06e0: 0x042E, // cyrillic capital letter yu
	0x06e1: 0x0410, // cyrillic capital letter a
	0x06e2: 0x0411, // cyrillic capital letter be
	0x06e3: 0x0426, // cyrillic capital letter tse
	0x06e4: 0x0414, // cyrillic capital letter de
	0x06e5: 0x0415, // cyrillic capital letter ie
	0x06e6: 0x0424, // cyrillic capital letter ef
	0x06e7: 0x0413, // cyrillic capital letter ghe
	0x06e8: 0x0425, // cyrillic capital letter ha
	0x06e9: 0x0418, // cyrillic capital letter i
	0x06ea: 0x0419, // cyrillic capital letter short i
	0x06eb: 0x041A, // cyrillic capital letter ka
	0x06ec: 0x041B, // cyrillic capital letter el
	0x06ed: 0x041C, // cyrillic capital letter em
	0x06ee: 0x041D, // cyrillic capital letter en
	0x06ef: 0x041E, // cyrillic capital letter o
	0x06f0: 0x041F, // cyrillic capital letter pe
	0x06f1: 0x042F, // cyrillic capital letter ya
	0x06f2: 0x0420, // cyrillic capital letter er
	0x06f3: 0x0421, // cyrillic capital letter es
	0x06f4: 0x0422, // cyrillic capital letter te
	0x06f5: 0x0423, // cyrillic capital letter u
	0x06f6: 0x0416, // cyrillic capital letter zhe
	0x06f7: 0x0412, // cyrillic capital letter ve
	0x06f8: 0x042C, // cyrillic capital letter soft sign
	0x06f9: 0x042B, // cyrillic capital letter yeru
	0x06fa: 0x0417, // cyrillic capital letter ze
	0x06fb: 0x0428, // cyrillic capital letter sha
	0x06fc: 0x042D, // cyrillic capital letter e
	0x06fd: 0x0429, // cyrillic capital letter shcha
	0x06fe: 0x0427, // cyrillic capital letter che
	0x06ff: 0x042A, // cyrillic capital letter hard sign
	0x07a1: 0x0386, // greek capital letter alpha with tonos
	0x07a2: 0x0388, // greek capital letter epsilon with tonos
	0x07a3: 0x0389, // greek capital letter eta with tonos
	0x07a4: 0x038A, // greek capital letter iota with tonos
	0x07a5: 0x03AA, // greek capital letter iota with dialytika
	0x07a7: 0x038C, // greek capital letter omicron with tonos
	0x07a8: 0x038E, // greek capital letter upsilon with tonos
	0x07a9: 0x03AB, // greek capital letter upsilon with dialytika
	0x07ab: 0x038F, // greek capital letter omega with tonos
	0x07ae: 0x0385, // greek dialytika tonos
	0x07af: 0x2015, // horizontal bar
	0x07b1: 0x03AC, // greek small letter alpha with tonos
	0x07b2: 0x03AD, // greek small letter epsilon with tonos
	0x07b3: 0x03AE, // greek small letter eta with tonos
	0x07b4: 0x03AF, // greek small letter iota with tonos
	0x07b5: 0x03CA, // greek small letter iota with dialytika
	0x07b6: 0x0390, // greek small letter iota with dialytika and tonos
	0x07b7: 0x03CC, // greek small letter omicron with tonos
	0x07b8: 0x03CD, // greek small letter upsilon with tonos
	0x07b9: 0x03CB, // greek small letter upsilon with dialytika
	0x07ba: 0x03B0, // greek small letter upsilon with dialytika and tonos
	0x07bb: 0x03CE, // greek small letter omega with tonos
	0x07c1: 0x0391, // greek capital letter alpha
	0x07c2: 0x0392, // greek capital letter beta
	0x07c3: 0x0393, // greek capital letter gamma
	0x07c4: 0x0394, // greek capital letter delta
	0x07c5: 0x0395, // greek capital letter epsilon
	0x07c6: 0x0396, // greek capital letter zeta
	0x07c7: 0x0397, // greek capital letter eta
	0x07c8: 0x0398, // greek capital letter theta
	0x07c9: 0x0399, // greek capital letter iota
	0x07ca: 0x039A, // greek capital letter kappa
	0x07cb: 0x039B, // greek capital letter lamda
	0x07cc: 0x039C, // greek capital letter mu
	0x07cd: 0x039D, // greek capital letter nu
	0x07ce: 0x039E, // greek capital letter xi
	0x07cf: 0x039F, // greek capital letter omicron
	0x07d0: 0x03A0, // greek capital letter pi
	0x07d1: 0x03A1, // greek capital letter rho
	0x07d2: 0x03A3, // greek capital letter sigma
	0x07d4: 0x03A4, // greek capital letter tau
	0x07d5: 0x03A5, // greek capital letter upsilon
	0x07d6: 0x03A6, // greek capital letter phi
	0x07d7: 0x03A7, // greek capital letter chi
	0x07d8: 0x03A8, // greek capital letter psi
	0x07d9: 0x03A9, // greek capital letter omega
	0x07e1: 0x03B1, // greek small letter alpha
	0x07e2: 0x03B2, // greek small letter beta
	0x07e3: 0x03B3, // greek small letter gamma
	0x07e4: 0x03B4, // greek small letter delta
	0x07e5: 0x03B5, // greek small letter epsilon
	0x07e6: 0x03B6, // greek small letter zeta
	0x07e7: 0x03B7, // greek small letter eta
	0x07e8: 0x03B8, // greek small letter theta
	0x07e9: 0x03B9, // greek small letter iota
	0x07ea: 0x03BA, // greek small letter kappa
	0x07eb: 0x03BB, // greek small letter lamda
	0x07ec: 0x03BC, // greek small letter mu
	0x07ed: 0x03BD, // greek small letter nu
	0x07ee: 0x03BE, // greek small letter xi
	0x07ef: 0x03BF, // greek small letter omicron
	0x07f0: 0x03C0, // greek small letter pi
	0x07f1: 0x03C1, // greek small letter rho
	0x07f2: 0x03C3, // greek small letter sigma
	0x07f3: 0x03C2, // greek small letter final sigma
	0x07f4: 0x03C4, // greek small letter tau
	0x07f5: 0x03C5, // greek small letter upsilon
	0x07f6: 0x03C6, // greek small letter phi
	0x07f7: 0x03C7, // greek small letter chi
	0x07f8: 0x03C8, // greek small letter psi
	0x07f9: 0x03C9, // greek small letter omega
	0x08a1: 0x23B7, // radical symbol bottom
	0x08a2: 0x250C, // box drawings light down and right
	0x08a3: 0x2500, // box drawings light horizontal
	0x08a4: 0x2320, // top half integral
	0x08a5: 0x2321, // bottom half integral
	0x08a6: 0x2502, // box drawings light vertical
	0x08a7: 0x23A1, // left square bracket upper corner
	0x08a8: 0x23A3, // left square bracket lower corner
	0x08a9: 0x23A4, // right square bracket upper corner
	0x08aa: 0x23A6, // right square bracket lower corner
	0x08ab: 0x239B, // left parenthesis upper hook
	0x08ac: 0x239D, // left parenthesis lower hook
	0x08ad: 0x239E, // right parenthesis upper hook
	0x08ae: 0x23A0, // right parenthesis lower hook
	0x08af: 0x23A8, // left curly bracket middle piece
	0x08b0: 0x23AC, // right curly bracket middle piece
	0x08bc: 0x2264, // less-than or equal to
	0x08bd: 0x2260, // not equal to
	0x08be: 0x2265, // greater-than or equal to
	0x08bf: 0x222B, // integral
	0x08c0: 0x2234, // therefore
	0x08c1: 0x221D, // proportional to
	0x08c2: 0x221E, // infinity
	0x08c5: 0x2207, // nabla
	0x08c8: 0x223C, // tilde operator
	0x08c9: 0x2243, // asymptotically equal to
	0x08cd: 0x21D4, // left right double arrow
	0x08ce: 0x21D2, // rightwards double arrow
	0x08cf: 0x2261, // identical to
	0x08d6: 0x221A, // square root
	0x08da: 0x2282, // subset of
	0x08db: 0x2283, // superset of
	0x08dc: 0x2229, // intersection
	0x08dd: 0x222A, // union
	0x08de: 0x2227, // logical and
	0x08df: 0x2228, // logical or
	0x08ef: 0x2202, // partial differential
	0x08f6: 0x0192, // latin small letter f with hook
	0x08fb: 0x2190, // leftwards arrow
	0x08fc: 0x2191, // upwards arrow
	0x08fd: 0x2192, // rightwards arrow
	0x08fe: 0x2193, // downwards arrow
	0x09e0: 0x25C6, // black diamond
	0x09e1: 0x2592, // medium shade
	0x09e2: 0x2409, // symbol for horizontal tabulation
	0x09e3: 0x240C, // symbol for form feed
	0x09e4: 0x240D, // symbol for carriage return
	0x09e5: 0x240A, // symbol for line feed
	0x09e8: 0x2424, // symbol for newline
	0x09e9: 0x240B, // symbol for vertical tabulation
	0x09ea: 0x2518, // box drawings light up and left
	0x09eb: 0x2510, // box drawings light down and left
	0x09ec: 0x250C, // box drawings light down and right
	0x09ed: 0x2514, // box drawings light up and right
	0x09ee: 0x253C, // box drawings light vertical and horizontal
	0x09ef: 0x23BA, // horizontal scan line-1
	0x09f0: 0x23BB, // horizontal scan line-3
	0x09f1: 0x2500, // box drawings light horizontal
	0x09f2: 0x23BC, // horizontal scan line-7
	0x09f3: 0x23BD, // horizontal scan line-9
	0x09f4: 0x251C, // box drawings light vertical and right
	0x09f5: 0x2524, // box drawings light vertical and left
	0x09f6: 0x2534, // box drawings light up and horizontal
	0x09f7: 0x252C, // box drawings light down and horizontal
	0x09f8: 0x2502, // box drawings light vertical
	0x0aa1: 0x2003, // em space
	0x0aa2: 0x2002, // en space
	0x0aa3: 0x2004, // three-per-em space
	0x0aa4: 0x2005, // four-per-em space
	0x0aa5: 0x2007, // figure space
	0x0aa6: 0x2008, // punctuation space
	0x0aa7: 0x2009, // thin space
	0x0aa8: 0x200A, // hair space
	0x0aa9: 0x2014, // em dash
	0x0aaa: 0x2013, // en dash
	0x0aac: 0x2423, // open box
	0x0aae: 0x2026, // horizontal ellipsis
	0x0aaf: 0x2025, // two dot leader
	0x0ab0: 0x2153, // vulgar fraction one third
	0x0ab1: 0x2154, // vulgar fraction two thirds
	0x0ab2: 0x2155, // vulgar fraction one fifth
	0x0ab3: 0x2156, // vulgar fraction two fifths
	0x0ab4: 0x2157, // vulgar fraction three fifths
	0x0ab5: 0x2158, // vulgar fraction four fifths
	0x0ab6: 0x2159, // vulgar fraction one sixth
	0x0ab7: 0x215A, // vulgar fraction five sixths
	0x0ab8: 0x2105, // care of
	0x0abb: 0x2012, // figure dash
	0x0abc: 0x2329, // left-pointing angle bracket
	0x0abd: 0x002E, // full stop
	0x0abe: 0x232A, // right-pointing angle bracket
	0x0ac3: 0x215B, // vulgar fraction one eighth
	0x0ac4: 0x215C, // vulgar fraction three eighths
	0x0ac5: 0x215D, // vulgar fraction five eighths
	0x0ac6: 0x215E, // vulgar fraction seven eighths
	0x0ac9: 0x2122, // trade mark sign
	0x0aca: 0x2613, // saltire
	0x0acc: 0x25C1, // white left-pointing triangle
	0x0acd: 0x25B7, // white right-pointing triangle
	0x0ace: 0x25CB, // white circle
	0x0acf: 0x25AF, // white vertical rectangle
	0x0ad0: 0x2018, // left single quotation mark
	0x0ad1: 0x2019, // right single quotation mark
	0x0ad2: 0x201C, // left double quotation mark
	0x0ad3: 0x201D, // right double quotation mark
	0x0ad4: 0x211E, // prescription take
	0x0ad5: 0x2030, // per mille sign
	0x0ad6: 0x2032, // prime
	0x0ad7: 0x2033, // double prime
	0x0ad9: 0x271D, // latin cross
	0x0adb: 0x25AC, // black rectangle
	0x0adc: 0x25C0, // black left-pointing triangle
	0x0add: 0x25B6, // black right-pointing triangle
	0x0ade: 0x25CF, // black circle
	0x0adf: 0x25AE, // black vertical rectangle
	0x0ae0: 0x25E6, // white bullet
	0x0ae1: 0x25AB, // white small square
	0x0ae2: 0x25AD, // white rectangle
	0x0ae3: 0x25B3, // white up-pointing triangle
	0x0ae4: 0x25BD, // white down-pointing triangle
	0x0ae5: 0x2606, // white star
	0x0ae6: 0x2022, // bullet
	0x0ae7: 0x25AA, // black small square
	0x0ae8: 0x25B2, // black up-pointing triangle
	0x0ae9: 0x25BC, // black down-pointing triangle
	0x0aea: 0x261C, // white left pointing index
	0x0aeb: 0x261E, // white right pointing index
	0x0aec: 0x2663, // black club suit
	0x0aed: 0x2666, // black diamond suit
	0x0aee: 0x2665, // black heart suit
	0x0af0: 0x2720, // maltese cross
	0x0af1: 0x2020, // dagger
	0x0af2: 0x2021, // double dagger
	0x0af3: 0x2713, // check mark
	0x0af4: 0x2717, // ballot x
	0x0af5: 0x266F, // music sharp sign
	0x0af6: 0x266D, // music flat sign
	0x0af7: 0x2642, // male sign
	0x0af8: 0x2640, // female sign
	0x0af9: 0x260E, // black telephone
	0x0afa: 0x2315, // telephone recorder
	0x0afb: 0x2117, // sound recording copyright
	0x0afc: 0x2038, // caret
	0x0afd: 0x201A, // single low-9 quotation mark
	0x0afe: 0x201E, // double low-9 quotation mark
	0x0ba3: 0x003C, // less-than sign
	0x0ba6: 0x003E, // greater-than sign
	0x0ba8: 0x2228, // logical or
	0x0ba9: 0x2227, // logical and
	0x0bc0: 0x00AF, // macron
	0x0bc2: 0x22A4, // down tack
	0x0bc3: 0x2229, // intersection
	0x0bc4: 0x230A, // left floor
	0x0bc6: 0x005F, // low line
	0x0bca: 0x2218, // ring operator
	0x0bcc: 0x2395, // apl functional symbol quad
	0x0bce: 0x22A5, // up tack
	0x0bcf: 0x25CB, // white circle
	0x0bd3: 0x2308, // left ceiling
	0x0bd6: 0x222A, // union
	0x0bd8: 0x2283, // superset of
	0x0bda: 0x2282, // subset of
	0x0bdc: 0x22A3, // left tack
	0x0bfc: 0x22A2, // right tack
	0x0cdf: 0x2017, // double low line
	0x0ce0: 0x05D0, // hebrew letter alef
	0x0ce1: 0x05D1, // hebrew letter bet
	0x0ce2: 0x05D2, // hebrew letter gimel
	0x0ce3: 0x05D3, // hebrew letter dalet
	0x0ce4: 0x05D4, // hebrew letter he
	0x0ce5: 0x05D5, // hebrew letter vav
	0x0ce6: 0x05D6, // hebrew letter zayin
	0x0ce7: 0x05D7, // hebrew letter het
	0x0ce8: 0x05D8, // hebrew letter tet
	0x0ce9: 0x05D9, // hebrew letter yod
	0x0cea: 0x05DA, // hebrew letter final kaf
	0x0ceb: 0x05DB, // hebrew letter kaf
	0x0cec: 0x05DC, // hebrew letter lamed
	0x0ced: 0x05DD, // hebrew letter final mem
	0x0cee: 0x05DE, // hebrew letter mem
	0x0cef: 0x05DF, // hebrew letter final nun
	0x0cf0: 0x05E0, // hebrew letter nun
	0x0cf1: 0x05E1, // hebrew letter samekh
	0x0cf2: 0x05E2, // hebrew letter ayin
	0x0cf3: 0x05E3, // hebrew letter final pe
	0x0cf4: 0x05E4, // hebrew letter pe
	0x0cf5: 0x05E5, // hebrew letter final tsadi
	0x0cf6: 0x05E6, // hebrew letter tsadi
	0x0cf7: 0x05E7, // hebrew letter qof
	0x0cf8: 0x05E8, // hebrew letter resh
	0x0cf9: 0x05E9, // hebrew letter shin
	0x0cfa: 0x05EA, // hebrew letter tav
	0x0da1: 0x0E01, // thai character ko kai
	0x0da2: 0x0E02, // thai character kho khai
	0x0da3: 0x0E03, // thai character kho khuat
	0x0da4: 0x0E04, // thai character kho khwai
	0x0da5: 0x0E05, // thai character kho khon
	0x0da6: 0x0E06, // thai character kho rakhang
	0x0da7: 0x0E07, // thai character ngo ngu
	0x0da8: 0x0E08, // thai character cho chan
	0x0da9: 0x0E09, // thai character cho ching
	0x0daa: 0x0E0A, // thai character cho chang
	0x0dab: 0x0E0B, // thai character so so
	0x0dac: 0x0E0C, // thai character cho choe
	0x0dad: 0x0E0D, // thai character yo ying
	0x0dae: 0x0E0E, // thai character do chada
	0x0daf: 0x0E0F, // thai character to patak
	0x0db0: 0x0E10, // thai character tho than
	0x0db1: 0x0E11, // thai character tho nangmontho
	0x0db2: 0x0E12, // thai character tho phuthao
	0x0db3: 0x0E13, // thai character no nen
	0x0db4: 0x0E14, // thai character do dek
	0x0db5: 0x0E15, // thai character to tao
	0x0db6: 0x0E16, // thai character tho thung
	0x0db7: 0x0E17, // thai character tho thahan
	0x0db8: 0x0E18, // thai character tho thong
	0x0db9: 0x0E19, // thai character no nu
	0x0dba: 0x0E1A, // thai character bo baimai
	0x0dbb: 0x0E1B, // thai character po pla
	0x0dbc: 0x0E1C, // thai character pho phung
	0x0dbd: 0x0E1D, // thai character fo fa
	0x0dbe: 0x0E1E, // thai character pho phan
	0x0dbf: 0x0E1F, // thai character fo fan
	0x0dc0: 0x0E20, // thai character pho samphao
	0x0dc1: 0x0E21, // thai character mo ma
	0x0dc2: 0x0E22, // thai character yo yak
	0x0dc3: 0x0E23, // thai character ro rua
	0x0dc4: 0x0E24, // thai character ru
	0x0dc5: 0x0E25, // thai character lo ling
	0x0dc6: 0x0E26, // thai character lu
	0x0dc7: 0x0E27, // thai character wo waen
	0x0dc8: 0x0E28, // thai character so sala
	0x0dc9: 0x0E29, // thai character so rusi
	0x0dca: 0x0E2A, // thai character so sua
	0x0dcb: 0x0E2B, // thai character ho hip
	0x0dcc: 0x0E2C, // thai character lo chula
	0x0dcd: 0x0E2D, // thai character o ang
	0x0dce: 0x0E2E, // thai character ho nokhuk
	0x0dcf: 0x0E2F, // thai character paiyannoi
	0x0dd0: 0x0E30, // thai character sara a
	0x0dd1: 0x0E31, // thai character mai han-akat
	0x0dd2: 0x0E32, // thai character sara aa
	0x0dd3: 0x0E33, // thai character sara am
	0x0dd4: 0x0E34, // thai character sara i
	0x0dd5: 0x0E35, // thai character sara ii
	0x0dd6: 0x0E36, // thai character sara ue
	0x0dd7: 0x0E37, // thai character sara uee
	0x0dd8: 0x0E38, // thai character sara u
	0x0dd9: 0x0E39, // thai character sara uu
	0x0dda: 0x0E3A, // thai character phinthu
	0x0ddf: 0x0E3F, // thai currency symbol baht
	0x0de0: 0x0E40, // thai character sara e
	0x0de1: 0x0E41, // thai character sara ae
	0x0de2: 0x0E42, // thai character sara o
	0x0de3: 0x0E43, // thai character sara ai maimuan
	0x0de4: 0x0E44, // thai character sara ai maimalai
	0x0de5: 0x0E45, // thai character lakkhangyao
	0x0de6: 0x0E46, // thai character maiyamok
	0x0de7: 0x0E47, // thai character maitaikhu
	0x0de8: 0x0E48, // thai character mai ek
	0x0de9: 0x0E49, // thai character mai tho
	0x0dea: 0x0E4A, // thai character mai tri
	0x0deb: 0x0E4B, // thai character mai chattawa
	0x0dec: 0x0E4C, // thai character thanthakhat
	0x0ded: 0x0E4D, // thai character nikhahit
	0x0df0: 0x0E50, // thai digit zero
	0x0df1: 0x0E51, // thai digit one
	0x0df2: 0x0E52, // thai digit two
	0x0df3: 0x0E53, // thai digit three
	0x0df4: 0x0E54, // thai digit four
	0x0df5: 0x0E55, // thai digit five
	0x0df6: 0x0E56, // thai digit six
	0x0df7: 0x0E57, // thai digit seven
	0x0df8: 0x0E58, // thai digit eight
	0x0df9: 0x0E59, // thai digit nine
	0x0ea1: 0x3131, // hangul letter kiyeok
	0x0ea2: 0x3132, // hangul letter ssangkiyeok
	0x0ea3: 0x3133, // hangul letter kiyeok-sios
	0x0ea4: 0x3134, // hangul letter nieun
	0x0ea5: 0x3135, // hangul letter nieun-cieuc
	0x0ea6: 0x3136, // hangul letter nieun-hieuh
	0x0ea7: 0x3137, // hangul letter tikeut
	0x0ea8: 0x3138, // hangul letter ssangtikeut
	0x0ea9: 0x3139, // hangul letter rieul
	0x0eaa: 0x313A, // hangul letter rieul-kiyeok
	0x0eab: 0x313B, // hangul letter rieul-mieum
	0x0eac: 0x313C, // hangul letter rieul-pieup
	0x0ead: 0x313D, // hangul letter rieul-sios
	0x0eae: 0x313E, // hangul letter rieul-thieuth
	0x0eaf: 0x313F, // hangul letter rieul-phieuph
	0x0eb0: 0x3140, // hangul letter rieul-hieuh
	0x0eb1: 0x3141, // hangul letter mieum
	0x0eb2: 0x3142, // hangul letter pieup
	0x0eb3: 0x3143, // hangul letter ssangpieup
	0x0eb4: 0x3144, // hangul letter pieup-sios
	0x0eb5: 0x3145, // hangul letter sios
	0x0eb6: 0x3146, // hangul letter ssangsios
	0x0eb7: 0x3147, // hangul letter ieung
	0x0eb8: 0x3148, // hangul letter cieuc
	0x0eb9: 0x3149, // hangul letter ssangcieuc
	0x0eba: 0x314A, // hangul letter chieuch
	0x0ebb: 0x314B, // hangul letter khieukh
	0x0ebc: 0x314C, // hangul letter thieuth
	0x0ebd: 0x314D, // hangul letter phieuph
	0x0ebe: 0x314E, // hangul letter hieuh
	0x0ebf: 0x314F, // hangul letter a
	0x0ec0: 0x3150, // hangul letter ae
	0x0ec1: 0x3151, // hangul letter ya
	0x0ec2: 0x3152, // hangul letter yae
	0x0ec3: 0x3153, // hangul letter eo
	0x0ec4: 0x3154, // hangul letter e
	0x0ec5: 0x3155, // hangul letter yeo
	0x0ec6: 0x3156, // hangul letter ye
	0x0ec7: 0x3157, // hangul letter o
	0x0ec8: 0x3158, // hangul letter wa
	0x0ec9: 0x3159, // hangul letter wae
	0x0eca: 0x315A, // hangul letter oe
	0x0ecb: 0x315B, // hangul letter yo
	0x0ecc: 0x315C, // hangul letter u
	0x0ecd: 0x315D, // hangul letter weo
	0x0ece: 0x315E, // hangul letter we
	0x0ecf: 0x315F, // hangul letter wi
	0x0ed0: 0x3160, // hangul letter yu
	0x0ed1: 0x3161, // hangul letter eu
	0x0ed2: 0x3162, // hangul letter yi
	0x0ed3: 0x3163, // hangul letter i
	0x0ed4: 0x11A8, // hangul jongseong kiyeok
	0x0ed5: 0x11A9, // hangul jongseong ssangkiyeok
	0x0ed6: 0x11AA, // hangul jongseong kiyeok-sios
	0x0ed7: 0x11AB, // hangul jongseong nieun
	0x0ed8: 0x11AC, // hangul jongseong nieun-cieuc
	0x0ed9: 0x11AD, // hangul jongseong nieun-hieuh
	0x0eda: 0x11AE, // hangul jongseong tikeut
	0x0edb: 0x11AF, // hangul jongseong rieul
	0x0edc: 0x11B0, // hangul jongseong rieul-kiyeok
	0x0edd: 0x11B1, // hangul jongseong rieul-mieum
	0x0ede: 0x11B2, // hangul jongseong rieul-pieup
	0x0edf: 0x11B3, // hangul jongseong rieul-sios
	0x0ee0: 0x11B4, // hangul jongseong rieul-thieuth
	0x0ee1: 0x11B5, // hangul jongseong rieul-phieuph
	0x0ee2: 0x11B6, // hangul jongseong rieul-hieuh
	0x0ee3: 0x11B7, // hangul jongseong mieum
	0x0ee4: 0x11B8, // hangul jongseong pieup
	0x0ee5: 0x11B9, // hangul jongseong pieup-sios
	0x0ee6: 0x11BA, // hangul jongseong sios
	0x0ee7: 0x11BB, // hangul jongseong ssangsios
	0x0ee8: 0x11BC, // hangul jongseong ieung
	0x0ee9: 0x11BD, // hangul jongseong cieuc
	0x0eea: 0x11BE, // hangul jongseong chieuch
	0x0eeb: 0x11BF, // hangul jongseong khieukh
	0x0eec: 0x11C0, // hangul jongseong thieuth
	0x0eed: 0x11C1, // hangul jongseong phieuph
	0x0eee: 0x11C2, // hangul jongseong hieuh
	0x0eef: 0x316D, // hangul letter rieul-yeorinhieuh
	0x0ef0: 0x3171, // hangul letter kapyeounmieum
	0x0ef1: 0x3178, // hangul letter kapyeounpieup
	0x0ef2: 0x317F, // hangul letter pansios
	0x0ef3: 0x3181, // hangul letter yesieung
	0x0ef4: 0x3184, // hangul letter kapyeounphieuph
	0x0ef5: 0x3186, // hangul letter yeorinhieuh
	0x0ef6: 0x318D, // hangul letter araea
	0x0ef7: 0x318E, // hangul letter araeae
	0x0ef8: 0x11EB, // hangul jongseong pansios
	0x0ef9: 0x11F0, // hangul jongseong yesieung
	0x0efa: 0x11F9, // hangul jongseong yeorinhieuh
	0x0eff: 0x20A9, // won sign
	0x13bc: 0x0152, // latin capital ligature oe
	0x13bd: 0x0153, // latin small ligature oe
	0x13be: 0x0178, // latin capital letter y with diaeresis
	0x20ac: 0x20AC, // euro sign
}
