package keymap

// Decompositions used when a layout has no key that produces a character
// directly. The first item of every sequence is the dead key or Compose,
// the rest are the keys struck after it.

var deadDecomposeTable = map[KeyID][]KeyID{
	0x0060: {KeyDeadGrave, 0x0020},       // grave dead_grave space
	0x00B4: {KeyDeadAcute, 0x0020},       // acute dead_acute space
	0x005E: {KeyDeadCircumflex, 0x0020},  // asciicircum dead_circumflex space
	0x007E: {KeyDeadTilde, 0x0020},       // asciitilde dead_tilde space
	0x00B8: {KeyDeadCedilla, 0x0020},     // cedilla dead_cedilla space
	0x02DB: {KeyDeadOgonek, 0x0020},      // ogonek dead_ogonek space
	0x02C7: {KeyDeadCaron, 0x0020},       // caron dead_caron space
	0x02D9: {KeyDeadAbovedot, 0x0020},    // abovedot dead_abovedot space
	0x02DD: {KeyDeadDoubleacute, 0x0020}, // doubleacute dead_doubleacute space
	0x02D8: {KeyDeadBreve, 0x0020},       // breve dead_breve space
	0x00AF: {KeyDeadMacron, 0x0020},      // macron dead_macron space
	0x00C0: {KeyDeadGrave, 0x0041},       // Agrave dead_grave A
	0x00C1: {KeyDeadAcute, 0x0041},       // Aacute dead_acute A
	0x00C2: {KeyDeadCircumflex, 0x0041},  // Acircumflex dead_circumflex A
	0x00C3: {KeyDeadTilde, 0x0041},       // Atilde dead_tilde A
	0x00C4: {KeyDeadDiaeresis, 0x0041},   // Adiaeresis dead_diaeresis A
	0x00C5: {KeyDeadAbovering, 0x0041},   // Aring dead_abovering A
	0x00C7: {KeyDeadCedilla, 0x0043},     // Ccedilla dead_cedilla C
	0x00C8: {KeyDeadGrave, 0x0045},       // Egrave dead_grave E
	0x00C9: {KeyDeadAcute, 0x0045},       // Eacute dead_acute E
	0x00CA: {KeyDeadCircumflex, 0x0045},  // Ecircumflex dead_circumflex E
	0x00CB: {KeyDeadDiaeresis, 0x0045},   // Ediaeresis dead_diaeresis E
	0x00CC: {KeyDeadGrave, 0x0049},       // Igrave dead_grave I
	0x00CD: {KeyDeadAcute, 0x0049},       // Iacute dead_acute I
	0x00CE: {KeyDeadCircumflex, 0x0049},  // Icircumflex dead_circumflex I
	0x00CF: {KeyDeadDiaeresis, 0x0049},   // Idiaeresis dead_diaeresis I
	0x00D1: {KeyDeadTilde, 0x004E},       // Ntilde dead_tilde N
	0x00D2: {KeyDeadGrave, 0x004F},       // Ograve dead_grave O
	0x00D3: {KeyDeadAcute, 0x004F},       // Oacute dead_acute O
	0x00D4: {KeyDeadCircumflex, 0x004F},  // Ocircumflex dead_circumflex O
	0x00D5: {KeyDeadTilde, 0x004F},       // Otilde dead_tilde O
	0x00D6: {KeyDeadDiaeresis, 0x004F},   // Odiaeresis dead_diaeresis O
	0x00D9: {KeyDeadGrave, 0x0055},       // Ugrave dead_grave U
	0x00DA: {KeyDeadAcute, 0x0055},       // Uacute dead_acute U
	0x00DB: {KeyDeadCircumflex, 0x0055},  // Ucircumflex dead_circumflex U
	0x00DC: {KeyDeadDiaeresis, 0x0055},   // Udiaeresis dead_diaeresis U
	0x00DD: {KeyDeadAcute, 0x0059},       // Yacute dead_acute Y
	0x00E0: {KeyDeadGrave, 0x0061},       // agrave dead_grave a
	0x00E1: {KeyDeadAcute, 0x0061},       // aacute dead_acute a
	0x00E2: {KeyDeadCircumflex, 0x0061},  // acircumflex dead_circumflex a
	0x00E3: {KeyDeadTilde, 0x0061},       // atilde dead_tilde a
	0x00E4: {KeyDeadDiaeresis, 0x0061},   // adiaeresis dead_diaeresis a
	0x00E5: {KeyDeadAbovering, 0x0061},   // aring dead_abovering a
	0x00E7: {KeyDeadCedilla, 0x0063},     // ccedilla dead_cedilla c
	0x00E8: {KeyDeadGrave, 0x0065},       // egrave dead_grave e
	0x00E9: {KeyDeadAcute, 0x0065},       // eacute dead_acute e
	0x00EA: {KeyDeadCircumflex, 0x0065},  // ecircumflex dead_circumflex e
	0x00EB: {KeyDeadDiaeresis, 0x0065},   // ediaeresis dead_diaeresis e
	0x00EC: {KeyDeadGrave, 0x0069},       // igrave dead_grave i
	0x00ED: {KeyDeadAcute, 0x0069},       // iacute dead_acute i
	0x00EE: {KeyDeadCircumflex, 0x0069},  // icircumflex dead_circumflex i
	0x00EF: {KeyDeadDiaeresis, 0x0069},   // idiaeresis dead_diaeresis i
	0x00F1: {KeyDeadTilde, 0x006E},       // ntilde dead_tilde n
	0x00F2: {KeyDeadGrave, 0x006F},       // ograve dead_grave o
	0x00F3: {KeyDeadAcute, 0x006F},       // oacute dead_acute o
	0x00F4: {KeyDeadCircumflex, 0x006F},  // ocircumflex dead_circumflex o
	0x00F5: {KeyDeadTilde, 0x006F},       // otilde dead_tilde o
	0x00F6: {KeyDeadDiaeresis, 0x006F},   // odiaeresis dead_diaeresis o
	0x00F9: {KeyDeadGrave, 0x0075},       // ugrave dead_grave u
	0x00FA: {KeyDeadAcute, 0x0075},       // uacute dead_acute u
	0x00FB: {KeyDeadCircumflex, 0x0075},  // ucircumflex dead_circumflex u
	0x00FC: {KeyDeadDiaeresis, 0x0075},   // udiaeresis dead_diaeresis u
	0x00FD: {KeyDeadAcute, 0x0079},       // yacute dead_acute y
	0x00FF: {KeyDeadDiaeresis, 0x0079},   // ydiaeresis dead_diaeresis y
	0x0104: {KeyDeadOgonek, 0x0041},      // Aogonek dead_ogonek A
	0x013D: {KeyDeadCaron, 0x004C},       // Lcaron dead_caron L
	0x015A: {KeyDeadAcute, 0x0053},       // Sacute dead_acute S
	0x0160: {KeyDeadCaron, 0x0053},       // Scaron dead_caron S
	0x015E: {KeyDeadCedilla, 0x0053},     // Scedilla dead_cedilla S
	0x0164: {KeyDeadCaron, 0x0054},       // Tcaron dead_caron T
	0x0179: {KeyDeadAcute, 0x005A},       // Zacute dead_acute Z
	0x017D: {KeyDeadCaron, 0x005A},       // Zcaron dead_caron Z
	0x017B: {KeyDeadAbovedot, 0x005A},    // Zabovedot dead_abovedot Z
	0x0105: {KeyDeadOgonek, 0x0061},      // aogonek dead_ogonek a
	0x013E: {KeyDeadCaron, 0x006C},       // lcaron dead_caron l
	0x015B: {KeyDeadAcute, 0x0073},       // sacute dead_acute s
	0x0161: {KeyDeadCaron, 0x0073},       // scaron dead_caron s
	0x015F: {KeyDeadCedilla, 0x0073},     // scedilla dead_cedilla s
	0x0165: {KeyDeadCaron, 0x0074},       // tcaron dead_caron t
	0x017A: {KeyDeadAcute, 0x007A},       // zacute dead_acute z
	0x017E: {KeyDeadCaron, 0x007A},       // zcaron dead_caron z
	0x017C: {KeyDeadAbovedot, 0x007A},    // zabovedot dead_abovedot z
	0x0154: {KeyDeadAcute, 0x0052},       // Racute dead_acute R
	0x0102: {KeyDeadBreve, 0x0041},       // Abreve dead_breve A
	0x0139: {KeyDeadAcute, 0x004C},       // Lacute dead_acute L
	0x0106: {KeyDeadAcute, 0x0043},       // Cacute dead_acute C
	0x010C: {KeyDeadCaron, 0x0043},       // Ccaron dead_caron C
	0x0118: {KeyDeadOgonek, 0x0045},      // Eogonek dead_ogonek E
	0x011A: {KeyDeadCaron, 0x0045},       // Ecaron dead_caron E
	0x010E: {KeyDeadCaron, 0x0044},       // Dcaron dead_caron D
	0x0143: {KeyDeadAcute, 0x004E},       // Nacute dead_acute N
	0x0147: {KeyDeadCaron, 0x004E},       // Ncaron dead_caron N
	0x0150: {KeyDeadDoubleacute, 0x004F}, // Odoubleacute dead_doubleacute O
	0x0158: {KeyDeadCaron, 0x0052},       // Rcaron dead_caron R
	0x016E: {KeyDeadAbovering, 0x0055},   // Uring dead_abovering U
	0x0170: {KeyDeadDoubleacute, 0x0055}, // Udoubleacute dead_doubleacute U
	0x0162: {KeyDeadCedilla, 0x0054},     // Tcedilla dead_cedilla T
	0x0155: {KeyDeadAcute, 0x0072},       // racute dead_acute r
	0x0103: {KeyDeadBreve, 0x0061},       // abreve dead_breve a
	0x013A: {KeyDeadAcute, 0x006C},       // lacute dead_acute l
	0x0107: {KeyDeadAcute, 0x0063},       // cacute dead_acute c
	0x010D: {KeyDeadCaron, 0x0063},       // ccaron dead_caron c
	0x0119: {KeyDeadOgonek, 0x0065},      // eogonek dead_ogonek e
	0x011B: {KeyDeadCaron, 0x0065},       // ecaron dead_caron e
	0x010F: {KeyDeadCaron, 0x0064},       // dcaron dead_caron d
	0x0144: {KeyDeadAcute, 0x006E},       // nacute dead_acute n
	0x0148: {KeyDeadCaron, 0x006E},       // ncaron dead_caron n
	0x0151: {KeyDeadDoubleacute, 0x006F}, // odoubleacute dead_doubleacute o
	0x0159: {KeyDeadCaron, 0x0072},       // rcaron dead_caron r
	0x016F: {KeyDeadAbovering, 0x0075},   // uring dead_abovering u
	0x0171: {KeyDeadDoubleacute, 0x0075}, // udoubleacute dead_doubleacute u
	0x0163: {KeyDeadCedilla, 0x0074},     // tcedilla dead_cedilla t
	0x0124: {KeyDeadCircumflex, 0x0048},  // Hcircumflex dead_circumflex H
	0x0130: {KeyDeadAbovedot, 0x0049},    // Iabovedot dead_abovedot I
	0x011E: {KeyDeadBreve, 0x0047},       // Gbreve dead_breve G
	0x0134: {KeyDeadCircumflex, 0x004A},  // Jcircumflex dead_circumflex J
	0x0125: {KeyDeadCircumflex, 0x0068},  // hcircumflex dead_circumflex h
	0x011F: {KeyDeadBreve, 0x0067},       // gbreve dead_breve g
	0x0135: {KeyDeadCircumflex, 0x006A},  // jcircumflex dead_circumflex j
	0x010A: {KeyDeadAbovedot, 0x0043},    // Cabovedot dead_abovedot C
	0x0108: {KeyDeadCircumflex, 0x0043},  // Ccircumflex dead_circumflex C
	0x0120: {KeyDeadAbovedot, 0x0047},    // Gabovedot dead_abovedot G
	0x011C: {KeyDeadCircumflex, 0x0047},  // Gcircumflex dead_circumflex G
	0x016C: {KeyDeadBreve, 0x0055},       // Ubreve dead_breve U
	0x015C: {KeyDeadCircumflex, 0x0053},  // Scircumflex dead_circumflex S
	0x010B: {KeyDeadAbovedot, 0x0063},    // cabovedot dead_abovedot c
	0x0109: {KeyDeadCircumflex, 0x0063},  // ccircumflex dead_circumflex c
	0x0121: {KeyDeadAbovedot, 0x0067},    // gabovedot dead_abovedot g
	0x011D: {KeyDeadCircumflex, 0x0067},  // gcircumflex dead_circumflex g
	0x016D: {KeyDeadBreve, 0x0075},       // ubreve dead_breve u
	0x015D: {KeyDeadCircumflex, 0x0073},  // scircumflex dead_circumflex s
	0x0156: {KeyDeadCedilla, 0x0052},     // Rcedilla dead_cedilla R
	0x0128: {KeyDeadTilde, 0x0049},       // Itilde dead_tilde I
	0x013B: {KeyDeadCedilla, 0x004C},     // Lcedilla dead_cedilla L
	0x0112: {KeyDeadMacron, 0x0045},      // Emacron dead_macron E
	0x0122: {KeyDeadCedilla, 0x0047},     // Gcedilla dead_cedilla G
	0x0157: {KeyDeadCedilla, 0x0072},     // rcedilla dead_cedilla r
	0x0129: {KeyDeadTilde, 0x0069},       // itilde dead_tilde i
	0x013C: {KeyDeadCedilla, 0x006C},     // lcedilla dead_cedilla l
	0x0113: {KeyDeadMacron, 0x0065},      // emacron dead_macron e
	0x0123: {KeyDeadCedilla, 0x0067},     // gcedilla dead_cedilla g
	0x0100: {KeyDeadMacron, 0x0041},      // Amacron dead_macron A
	0x012E: {KeyDeadOgonek, 0x0049},      // Iogonek dead_ogonek I
	0x0116: {KeyDeadAbovedot, 0x0045},    // Eabovedot dead_abovedot E
	0x012A: {KeyDeadMacron, 0x0049},      // Imacron dead_macron I
	0x0145: {KeyDeadCedilla, 0x004E},     // Ncedilla dead_cedilla N
	0x014C: {KeyDeadMacron, 0x004F},      // Omacron dead_macron O
	0x0136: {KeyDeadCedilla, 0x004B},     // Kcedilla dead_cedilla K
	0x0172: {KeyDeadOgonek, 0x0055},      // Uogonek dead_ogonek U
	0x0168: {KeyDeadTilde, 0x0055},       // Utilde dead_tilde U
	0x016A: {KeyDeadMacron, 0x0055},      // Umacron dead_macron U
	0x0101: {KeyDeadMacron, 0x0061},      // amacron dead_macron a
	0x012F: {KeyDeadOgonek, 0x0069},      // iogonek dead_ogonek i
	0x0117: {KeyDeadAbovedot, 0x0065},    // eabovedot dead_abovedot e
	0x012B: {KeyDeadMacron, 0x0069},      // imacron dead_macron i
	0x0146: {KeyDeadCedilla, 0x006E},     // ncedilla dead_cedilla n
	0x014D: {KeyDeadMacron, 0x006F},      // omacron dead_macron o
	0x0137: {KeyDeadCedilla, 0x006B},     // kcedilla dead_cedilla k
	0x0173: {KeyDeadOgonek, 0x0075},      // uogonek dead_ogonek u
	0x0169: {KeyDeadTilde, 0x0075},       // utilde dead_tilde u
	0x016B: {KeyDeadMacron, 0x0075},      // umacron dead_macron u
	0x1E02: {KeyDeadAbovedot, 0x0042},    // Babovedot dead_abovedot B
	0x1E03: {KeyDeadAbovedot, 0x0062},    // babovedot dead_abovedot b
	0x1E0A: {KeyDeadAbovedot, 0x0044},    // Dabovedot dead_abovedot D
	0x1E80: {KeyDeadGrave, 0x0057},       // Wgrave dead_grave W
	0x1E82: {KeyDeadAcute, 0x0057},       // Wacute dead_acute W
	0x1E0B: {KeyDeadAbovedot, 0x0064},    // dabovedot dead_abovedot d
	0x1EF2: {KeyDeadGrave, 0x0059},       // Ygrave dead_grave Y
	0x1E1E: {KeyDeadAbovedot, 0x0046},    // Fabovedot dead_abovedot F
	0x1E1F: {KeyDeadAbovedot, 0x0066},    // fabovedot dead_abovedot f
	0x1E40: {KeyDeadAbovedot, 0x004D},    // Mabovedot dead_abovedot M
	0x1E41: {KeyDeadAbovedot, 0x006D},    // mabovedot dead_abovedot m
	0x1E56: {KeyDeadAbovedot, 0x0050},    // Pabovedot dead_abovedot P
	0x1E81: {KeyDeadGrave, 0x0077},       // wgrave dead_grave w
	0x1E57: {KeyDeadAbovedot, 0x0070},    // pabovedot dead_abovedot p
	0x1E83: {KeyDeadAcute, 0x0077},       // wacute dead_acute w
	0x1E60: {KeyDeadAbovedot, 0x0053},    // Sabovedot dead_abovedot S
	0x1EF3: {KeyDeadGrave, 0x0079},       // ygrave dead_grave y
	0x1E84: {KeyDeadDiaeresis, 0x0057},   // Wdiaeresis dead_diaeresis W
	0x1E85: {KeyDeadDiaeresis, 0x0077},   // wdiaeresis dead_diaeresis w
	0x1E61: {KeyDeadAbovedot, 0x0073},    // sabovedot dead_abovedot s
	0x0174: {KeyDeadCircumflex, 0x0057},  // Wcircumflex dead_circumflex W
	0x1E6A: {KeyDeadAbovedot, 0x0054},    // Tabovedot dead_abovedot T
	0x0176: {KeyDeadCircumflex, 0x0059},  // Ycircumflex dead_circumflex Y
	0x0175: {KeyDeadCircumflex, 0x0077},  // wcircumflex dead_circumflex w
	0x1E6B: {KeyDeadAbovedot, 0x0074},    // tabovedot dead_abovedot t
	0x0177: {KeyDeadCircumflex, 0x0079},  // ycircumflex dead_circumflex y
	0x0178: {KeyDeadDiaeresis, 0x0059},   // Ydiaeresis dead_diaeresis Y
}

var composeDecomposeTable = map[KeyID][]KeyID{
	0x00C6: {KeyCompose, 0x0041, 0x0045}, // AE Multi_key A E
	0x00C1: {KeyCompose, 0x0041, 0x0027}, // Aacute Multi_key A apostrophe
	0x00C2: {KeyCompose, 0x0041, 0x005E}, // Acircumflex Multi_key A asciicircum
	0x00C4: {KeyCompose, 0x0041, 0x0022}, // Adiaeresis Multi_key A quotedbl
	0x00C0: {KeyCompose, 0x0041, 0x0060}, // Agrave Multi_key A grave
	0x00C5: {KeyCompose, 0x0041, 0x002A}, // Aring Multi_key A asterisk
	0x00C3: {KeyCompose, 0x0041, 0x007E}, // Atilde Multi_key A asciitilde
	0x00C7: {KeyCompose, 0x0043, 0x002C}, // Ccedilla Multi_key C comma
	0x00D0: {KeyCompose, 0x0044, 0x002D}, // ETH Multi_key D minus
	0x00C9: {KeyCompose, 0x0045, 0x0027}, // Eacute Multi_key E apostrophe
	0x00CA: {KeyCompose, 0x0045, 0x005E}, // Ecircumflex Multi_key E asciicircum
	0x00CB: {KeyCompose, 0x0045, 0x0022}, // Ediaeresis Multi_key E quotedbl
	0x00C8: {KeyCompose, 0x0045, 0x0060}, // Egrave Multi_key E grave
	0x00CD: {KeyCompose, 0x0049, 0x0027}, // Iacute Multi_key I apostrophe
	0x00CE: {KeyCompose, 0x0049, 0x005E}, // Icircumflex Multi_key I asciicircum
	0x00CF: {KeyCompose, 0x0049, 0x0022}, // Idiaeresis Multi_key I quotedbl
	0x00CC: {KeyCompose, 0x0049, 0x0060}, // Igrave Multi_key I grave
	0x00D1: {KeyCompose, 0x004E, 0x007E}, // Ntilde Multi_key N asciitilde
	0x00D3: {KeyCompose, 0x004F, 0x0027}, // Oacute Multi_key O apostrophe
	0x00D4: {KeyCompose, 0x004F, 0x005E}, // Ocircumflex Multi_key O asciicircum
	0x00D6: {KeyCompose, 0x004F, 0x0022}, // Odiaeresis Multi_key O quotedbl
	0x00D2: {KeyCompose, 0x004F, 0x0060}, // Ograve Multi_key O grave
	0x00D8: {KeyCompose, 0x004F, 0x002F}, // Ooblique Multi_key O slash
	0x00D5: {KeyCompose, 0x004F, 0x007E}, // Otilde Multi_key O asciitilde
	0x00DE: {KeyCompose, 0x0054, 0x0048}, // THORN Multi_key T H
	0x00DA: {KeyCompose, 0x0055, 0x0027}, // Uacute Multi_key U apostrophe
	0x00DB: {KeyCompose, 0x0055, 0x005E}, // Ucircumflex Multi_key U asciicircum
	0x00DC: {KeyCompose, 0x0055, 0x0022}, // Udiaeresis Multi_key U quotedbl
	0x00D9: {KeyCompose, 0x0055, 0x0060}, // Ugrave Multi_key U grave
	0x00DD: {KeyCompose, 0x0059, 0x0027}, // Yacute Multi_key Y apostrophe
	0x00E1: {KeyCompose, 0x0061, 0x0027}, // aacute Multi_key a apostrophe
	0x00E2: {KeyCompose, 0x0061, 0x005E}, // acircumflex Multi_key a asciicircum
	0x00B4: {KeyCompose, 0x0027, 0x0027}, // acute Multi_key apostrophe apostrophe
	0x00E4: {KeyCompose, 0x0061, 0x0022}, // adiaeresis Multi_key a quotedbl
	0x00E6: {KeyCompose, 0x0061, 0x0065}, // ae Multi_key a e
	0x00E0: {KeyCompose, 0x0061, 0x0060}, // agrave Multi_key a grave
	0x00E5: {KeyCompose, 0x0061, 0x002A}, // aring Multi_key a asterisk
	0x0040: {KeyCompose, 0x0041, 0x0054}, // at Multi_key A T
	0x00E3: {KeyCompose, 0x0061, 0x007E}, // atilde Multi_key a asciitilde
	0x005C: {KeyCompose, 0x002F, 0x002F}, // backslash Multi_key slash slash
	0x007C: {KeyCompose, 0x004C, 0x0056}, // bar Multi_key L V
	0x007B: {KeyCompose, 0x0028, 0x002D}, // braceleft Multi_key parenleft minus
	0x007D: {KeyCompose, 0x0029, 0x002D}, // braceright Multi_key parenright minus
	0x005B: {KeyCompose, 0x0028, 0x0028}, // bracketleft Multi_key parenleft parenleft
	0x005D: {KeyCompose, 0x0029, 0x0029}, // bracketright Multi_key parenright parenright
	0x00A6: {KeyCompose, 0x0042, 0x0056}, // brokenbar Multi_key B V
	0x00E7: {KeyCompose, 0x0063, 0x002C}, // ccedilla Multi_key c comma
	0x00B8: {KeyCompose, 0x002C, 0x002C}, // cedilla Multi_key comma comma
	0x00A2: {KeyCompose, 0x0063, 0x002F}, // cent Multi_key c slash
	0x00A9: {KeyCompose, 0x0028, 0x0063}, // copyright Multi_key parenleft c
	0x00A4: {KeyCompose, 0x006F, 0x0078}, // currency Multi_key o x
	0x00B0: {KeyCompose, 0x0030, 0x005E}, // degree Multi_key 0 asciicircum
	0x00A8: {KeyCompose, 0x0022, 0x0022}, // diaeresis Multi_key quotedbl quotedbl
	0x00F7: {KeyCompose, 0x003A, 0x002D}, // division Multi_key colon minus
	0x00E9: {KeyCompose, 0x0065, 0x0027}, // eacute Multi_key e apostrophe
	0x00EA: {KeyCompose, 0x0065, 0x005E}, // ecircumflex Multi_key e asciicircum
	0x00EB: {KeyCompose, 0x0065, 0x0022}, // ediaeresis Multi_key e quotedbl
	0x00E8: {KeyCompose, 0x0065, 0x0060}, // egrave Multi_key e grave
	0x00F0: {KeyCompose, 0x0064, 0x002D}, // eth Multi_key d minus
	0x00A1: {KeyCompose, 0x0021, 0x0021}, // exclamdown Multi_key exclam exclam
	0x00AB: {KeyCompose, 0x003C, 0x003C}, // guillemotleft Multi_key less less
	0x00BB: {KeyCompose, 0x003E, 0x003E}, // guillemotright Multi_key greater greater
	0x0023: {KeyCompose, 0x002B, 0x002B}, // numbersign Multi_key plus plus
	0x00AD: {KeyCompose, 0x002D, 0x002D}, // hyphen Multi_key minus minus
	0x00ED: {KeyCompose, 0x0069, 0x0027}, // iacute Multi_key i apostrophe
	0x00EE: {KeyCompose, 0x0069, 0x005E}, // icircumflex Multi_key i asciicircum
	0x00EF: {KeyCompose, 0x0069, 0x0022}, // idiaeresis Multi_key i quotedbl
	0x00EC: {KeyCompose, 0x0069, 0x0060}, // igrave Multi_key i grave
	0x00AF: {KeyCompose, 0x002D, 0x005E}, // macron Multi_key minus asciicircum
	0x00BA: {KeyCompose, 0x006F, 0x005F}, // masculine Multi_key o underscore
	0x00B5: {KeyCompose, 0x0075, 0x002F}, // mu Multi_key u slash
	0x00D7: {KeyCompose, 0x0078, 0x0078}, // multiply Multi_key x x
	0x00A0: {KeyCompose, 0x0020, 0x0020}, // nobreakspace Multi_key space space
	0x00AC: {KeyCompose, 0x002C, 0x002D}, // notsign Multi_key comma minus
	0x00F1: {KeyCompose, 0x006E, 0x007E}, // ntilde Multi_key n asciitilde
	0x00F3: {KeyCompose, 0x006F, 0x0027}, // oacute Multi_key o apostrophe
	0x00F4: {KeyCompose, 0x006F, 0x005E}, // ocircumflex Multi_key o asciicircum
	0x00F6: {KeyCompose, 0x006F, 0x0022}, // odiaeresis Multi_key o quotedbl
	0x00F2: {KeyCompose, 0x006F, 0x0060}, // ograve Multi_key o grave
	0x00BD: {KeyCompose, 0x0031, 0x0032}, // onehalf Multi_key 1 2
	0x00BC: {KeyCompose, 0x0031, 0x0034}, // onequarter Multi_key 1 4
	0x00B9: {KeyCompose, 0x0031, 0x005E}, // onesuperior Multi_key 1 asciicircum
	0x00AA: {KeyCompose, 0x0061, 0x005F}, // ordfeminine Multi_key a underscore
	0x00F8: {KeyCompose, 0x006F, 0x002F}, // oslash Multi_key o slash
	0x00F5: {KeyCompose, 0x006F, 0x007E}, // otilde Multi_key o asciitilde
	0x00B6: {KeyCompose, 0x0070, 0x0021}, // paragraph Multi_key p exclam
	0x00B7: {KeyCompose, 0x002E, 0x002E}, // periodcentered Multi_key period period
	0x00B1: {KeyCompose, 0x002B, 0x002D}, // plusminus Multi_key plus minus
	0x00BF: {KeyCompose, 0x003F, 0x003F}, // questiondown Multi_key question question
	0x00AE: {KeyCompose, 0x0028, 0x0072}, // registered Multi_key parenleft r
	0x00A7: {KeyCompose, 0x0073, 0x006F}, // section Multi_key s o
	0x00DF: {KeyCompose, 0x0073, 0x0073}, // ssharp Multi_key s s
	0x00A3: {KeyCompose, 0x004C, 0x002D}, // sterling Multi_key L minus
	0x00FE: {KeyCompose, 0x0074, 0x0068}, // thorn Multi_key t h
	0x00BE: {KeyCompose, 0x0033, 0x0034}, // threequarters Multi_key 3 4
	0x00B3: {KeyCompose, 0x0033, 0x005E}, // threesuperior Multi_key 3 asciicircum
	0x00B2: {KeyCompose, 0x0032, 0x005E}, // twosuperior Multi_key 2 asciicircum
	0x00FA: {KeyCompose, 0x0075, 0x0027}, // uacute Multi_key u apostrophe
	0x00FB: {KeyCompose, 0x0075, 0x005E}, // ucircumflex Multi_key u asciicircum
	0x00FC: {KeyCompose, 0x0075, 0x0022}, // udiaeresis Multi_key u quotedbl
	0x00F9: {KeyCompose, 0x0075, 0x0060}, // ugrave Multi_key u grave
	0x00FD: {KeyCompose, 0x0079, 0x0027}, // yacute Multi_key y apostrophe
	0x00FF: {KeyCompose, 0x0079, 0x0022}, // ydiaeresis Multi_key y quotedbl
	0x00A5: {KeyCompose, 0x0079, 0x003D}, // yen Multi_key y equal
}

// Decompose returns the dead-key sequence for id, falling back to the
// Compose sequence. ok is false when id has neither.
func Decompose(id KeyID) (seq []KeyID, compose bool, ok bool) {
	if seq, ok = deadDecomposeTable[id]; ok {
		return seq, false, true
	}
	if seq, ok = composeDecomposeTable[id]; ok {
		return seq, true, true
	}
	return nil, false, false
}
