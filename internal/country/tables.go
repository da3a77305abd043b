package country

// dialingCodes maps international calling codes to the country that owns
// them. Codes shared by several countries resolve to the largest one.
var dialingCodes = map[string]string{ //nolint: gochecknoglobals
	"1": "US", "7": "RU",
	"20": "EG", "27": "ZA", "30": "GR", "31": "NL", "32": "BE", "33": "FR", "34": "ES", "36": "HU", "39": "IT",
	"40": "RO", "41": "CH", "43": "AT", "44": "GB", "45": "DK", "46": "SE", "47": "NO", "48": "PL", "49": "DE",
	"51": "PE", "52": "MX", "53": "CU", "54": "AR", "55": "BR", "56": "CL", "57": "CO", "58": "VE",
	"60": "MY", "61": "AU", "62": "ID", "63": "PH", "64": "NZ", "65": "SG", "66": "TH",
	"81": "JP", "82": "KR", "84": "VN", "86": "CN", "90": "TR", "91": "IN", "92": "PK", "93": "AF", "94": "LK",
	"95": "MM", "98": "IR",
	"211": "SS", "212": "MA", "213": "DZ", "216": "TN", "218": "LY", "220": "GM", "221": "SN", "222": "MR",
	"223": "ML", "224": "GN", "225": "CI", "226": "BF", "227": "NE", "228": "TG", "229": "BJ", "230": "MU",
	"231": "LR", "232": "SL", "233": "GH", "234": "NG", "235": "TD", "236": "CF", "237": "CM", "238": "CV",
	"239": "ST", "240": "GQ", "241": "GA", "242": "CG", "243": "CD", "244": "AO", "245": "GW", "248": "SC",
	"249": "SD", "250": "RW", "251": "ET", "252": "SO", "253": "DJ", "254": "KE", "255": "TZ", "256": "UG",
	"257": "BI", "258": "MZ", "260": "ZM", "261": "MG", "263": "ZW", "264": "NA", "265": "MW", "266": "LS",
	"267": "BW", "268": "SZ", "269": "KM",
	"290": "SH", "291": "ER", "297": "AW", "298": "FO", "299": "GL",
	"350": "GI", "351": "PT", "352": "LU", "353": "IE", "354": "IS", "355": "AL", "356": "MT", "357": "CY",
	"358": "FI", "359": "BG", "370": "LT", "371": "LV", "372": "EE", "373": "MD", "374": "AM", "375": "BY",
	"376": "AD", "377": "MC", "378": "SM", "380": "UA", "381": "RS", "382": "ME", "383": "XK", "385": "HR",
	"386": "SI", "387": "BA", "389": "MK",
	"420": "CZ", "421": "SK", "423": "LI",
	"500": "FK", "501": "BZ", "502": "GT", "503": "SV", "504": "HN", "505": "NI", "506": "CR", "507": "PA",
	"509": "HT", "591": "BO", "592": "GY", "593": "EC", "595": "PY", "597": "SR", "598": "UY",
	"670": "TL", "673": "BN", "675": "PG", "676": "TO", "677": "SB", "678": "VU", "679": "FJ", "685": "WS",
	"852": "HK", "853": "MO", "855": "KH", "856": "LA", "880": "BD", "886": "TW",
	"960": "MV", "961": "LB", "962": "JO", "963": "SY", "964": "IQ", "965": "KW", "966": "SA", "967": "YE",
	"968": "OM", "970": "PS", "971": "AE", "972": "IL", "973": "BH", "974": "QA", "975": "BT", "976": "MN",
	"977": "NP", "992": "TJ", "993": "TM", "994": "AZ", "995": "GE", "996": "KG", "998": "UZ",
}

// genericTLDs are country-code domains used worldwide for branding, plus the
// generic ones, none of which say anything about location.
var genericTLDs = map[string]struct{}{ //nolint: gochecknoglobals
	"com": {}, "net": {}, "org": {}, "info": {}, "biz": {}, "edu": {}, "gov": {}, "mil": {}, "int": {},
	"io": {}, "co": {}, "ai": {}, "app": {}, "dev": {}, "me": {}, "tv": {}, "cc": {}, "ws": {}, "ly": {},
	"fm": {}, "gg": {}, "sh": {}, "to": {}, "vc": {}, "so": {}, "xyz": {}, "online": {}, "site": {},
	"tech": {}, "store": {}, "shop": {}, "cloud": {}, "agency": {}, "digital": {}, "eu": {}, "asia": {},
}

// tldCountries maps country-code TLDs to ISO codes where they differ or
// where the TLD is not in the ISO list.
var tldCountries = map[string]string{ //nolint: gochecknoglobals
	"uk": "GB",
}

// countryNames maps lower-cased country names, including native spellings,
// to ISO codes.
var countryNames = map[string]string{ //nolint: gochecknoglobals
	"united states": "US", "united states of america": "US", "usa": "US", "u.s.a.": "US", "estados unidos": "US",
	"vereinigte staaten": "US", "сша": "US",
	"canada": "CA", "kanada": "CA", "канада": "CA",
	"mexico": "MX", "méxico": "MX",
	"brazil": "BR", "brasil": "BR", "argentina": "AR", "chile": "CL", "colombia": "CO", "peru": "PE", "perú": "PE",
	"venezuela": "VE", "uruguay": "UY", "paraguay": "PY", "bolivia": "BO", "ecuador": "EC",
	"united kingdom": "GB", "great britain": "GB", "england": "GB", "scotland": "GB", "wales": "GB",
	"northern ireland": "GB", "vereinigtes königreich": "GB", "великобритания": "GB",
	"ireland": "IE", "éire": "IE", "irland": "IE",
	"germany": "DE", "deutschland": "DE", "allemagne": "DE", "alemania": "DE", "germania": "DE", "niemcy": "DE",
	"німеччина": "DE", "германия": "DE",
	"austria": "AT", "österreich": "AT", "osterreich": "AT", "австрія": "AT", "австрия": "AT",
	"switzerland": "CH", "schweiz": "CH", "suisse": "CH", "svizzera": "CH", "швейцарія": "CH", "швейцария": "CH",
	"france": "FR", "frankreich": "FR", "francia": "FR", "франція": "FR", "франция": "FR",
	"belgium": "BE", "belgique": "BE", "belgië": "BE", "belgien": "BE",
	"netherlands": "NL", "the netherlands": "NL", "nederland": "NL", "niederlande": "NL", "holland": "NL",
	"luxembourg": "LU", "luxemburg": "LU",
	"spain": "ES", "españa": "ES", "espana": "ES", "spanien": "ES", "іспанія": "ES", "испания": "ES",
	"portugal": "PT", "italy": "IT", "italia": "IT", "italien": "IT", "італія": "IT", "италия": "IT",
	"greece": "GR", "ελλάδα": "GR", "cyprus": "CY", "malta": "MT",
	"denmark": "DK", "danmark": "DK", "dänemark": "DK",
	"sweden": "SE", "sverige": "SE", "schweden": "SE",
	"norway": "NO", "norge": "NO", "norwegen": "NO",
	"finland": "FI", "suomi": "FI", "finnland": "FI",
	"iceland": "IS", "ísland": "IS",
	"estonia": "EE", "eesti": "EE", "latvia": "LV", "latvija": "LV", "lithuania": "LT", "lietuva": "LT",
	"poland": "PL", "polska": "PL", "polen": "PL", "польща": "PL", "польша": "PL",
	"czech republic": "CZ", "czechia": "CZ", "česko": "CZ", "česká republika": "CZ", "tschechien": "CZ",
	"slovakia": "SK", "slovensko": "SK", "hungary": "HU", "magyarország": "HU", "ungarn": "HU",
	"romania": "RO", "românia": "RO", "rumänien": "RO", "bulgaria": "BG", "българия": "BG",
	"moldova": "MD", "молдова": "MD",
	"croatia": "HR", "hrvatska": "HR", "slovenia": "SI", "slovenija": "SI", "serbia": "RS", "srbija": "RS",
	"србија": "RS", "bosnia and herzegovina": "BA", "montenegro": "ME", "north macedonia": "MK",
	"albania": "AL", "kosovo": "XK",
	"ukraine": "UA", "україна": "UA", "украина": "UA", "ukraina": "UA",
	"belarus": "BY", "беларусь": "BY", "білорусь": "BY",
	"russia": "RU", "russian federation": "RU", "россия": "RU", "российская федерация": "RU", "росія": "RU",
	"russland": "RU",
	"georgia": "GE", "საქართველო": "GE", "armenia": "AM", "azerbaijan": "AZ",
	"kazakhstan": "KZ", "казахстан": "KZ", "uzbekistan": "UZ", "kyrgyzstan": "KG", "tajikistan": "TJ",
	"turkmenistan": "TM",
	"turkey": "TR", "türkiye": "TR", "turkiye": "TR", "türkei": "TR", "туреччина": "TR", "турция": "TR",
	"israel": "IL", "ישראל": "IL", "lebanon": "LB", "jordan": "JO", "saudi arabia": "SA",
	"united arab emirates": "AE", "uae": "AE", "qatar": "QA", "kuwait": "KW", "bahrain": "BH", "oman": "OM",
	"egypt": "EG", "مصر": "EG", "morocco": "MA", "maroc": "MA", "tunisia": "TN", "algeria": "DZ",
	"nigeria": "NG", "ghana": "GH", "kenya": "KE", "ethiopia": "ET", "south africa": "ZA", "tanzania": "TZ",
	"uganda": "UG", "rwanda": "RW",
	"india": "IN", "भारत": "IN", "pakistan": "PK", "bangladesh": "BD", "sri lanka": "LK", "nepal": "NP",
	"china": "CN", "中国": "CN", "people's republic of china": "CN", "hong kong": "HK", "taiwan": "TW",
	"japan": "JP", "日本": "JP", "south korea": "KR", "republic of korea": "KR", "korea": "KR", "대한민국": "KR",
	"vietnam": "VN", "viet nam": "VN", "thailand": "TH", "malaysia": "MY", "singapore": "SG",
	"indonesia": "ID", "philippines": "PH", "cambodia": "KH",
	"australia": "AU", "new zealand": "NZ", "aotearoa": "NZ",
}

// isoCodes is every ISO 3166-1 alpha-2 code the tables know, used to validate
// codes from structured data and model output.
var isoCodes = func() map[string]struct{} { //nolint: gochecknoglobals
	out := make(map[string]struct{})
	for _, iso := range dialingCodes {
		out[iso] = struct{}{}
	}
	for _, iso := range countryNames {
		out[iso] = struct{}{}
	}
	for _, iso := range []string{
		"CA", "KZ", "AD", "BS", "BB", "JM", "TT", "DM", "GD", "LC", "KN", "AG", "PR", "DO", "VI", "GU", "AS",
		"MP", "NC", "PF", "RE", "GP", "MQ", "YT", "PM", "WF", "BM", "KY", "VG", "AI", "MS", "TC", "IM", "JE",
		"GG", "AX", "SJ", "VA", "KP", "MH", "FM", "PW", "NR", "KI", "TV", "NU", "CK", "TK", "IO", "BV", "HM",
		"TF", "GS", "UM", "EH", "AQ", "CX", "CC", "NF", "PN", "BL", "MF", "SX", "CW", "BQ", "SS",
	} {
		out[iso] = struct{}{}
	}

	return out
}()
