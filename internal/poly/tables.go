package poly

// Coefficients are s2.30 integers ordered from the highest degree down to the
// constant term. Precision is the worst-case number of correct mantissa bits
// over the whole segment domain.

// exp2Deg3 approximates 2^k for k in [0, 1).
// Precision: 13.24 bits.
var exp2Deg3 = Poly{84039593, 242996024, 746706207, 1073741824}

// exp2Deg4 approximates 2^k for k in [0, 1).
// Precision: 18.19 bits.
var exp2Deg4 = Poly{14555373, 55869331, 259179547, 744137573, 1073741824}

// exp2Deg5 approximates 2^k for k in [0, 1).
// Precision: 23.37 bits.
var exp2Deg5 = Poly{2017903, 9654007, 59934847, 257869054, 744266012, 1073741824}

// rcpDeg4 approximates 1/(1+k) for k in [0, 1).
// Precision: 11.33 bits.
var rcpDeg4 = Poly{166123244, -581431354, 939345296, -1060908097, 1073741824}

// rcpDeg6 approximates 1/(1+k) for k in [0, 1).
// Precision: 16.53 bits.
var rcpDeg6 = Poly{77852993, -350338469, 723231606, -974250754, 1059679220, -1073045505, 1073741824}

// sqrtDeg3 approximates sqrt(1+k) for k in [0, 1).
// Precision: 13.36 bits.
var sqrtDeg3 = Poly{26809804, -116435772, 534384395, 1073741824}

// sqrtDeg4 approximates sqrt(1+k) for k in [0, 1).
// Precision: 16.50 bits.
var sqrtDeg4 = Poly{-11559524, 49235626, -129356986, 536439312, 1073741824}

// rsqrtDeg3 approximates 1/sqrt(1+k) for k in [0, 1).
// Precision: 10.55 bits.
var rsqrtDeg3 = Poly{-91950555, 299398639, -521939780, 1073741824}

// rsqrtDeg5 approximates 1/sqrt(1+k) for k in [0, 1).
// Precision: 16.08 bits.
var rsqrtDeg5 = Poly{-34036183, 140361627, -276049470, 391366758, -536134428, 1073741824}

// logDeg5 approximates ln(1+k) for k in [0, 1).
// Precision: 12.18 bits.
var logDeg5 = Poly{34835446, -149023176, 315630515, -530763208, 1073581542, 0}

// log2Deg5 approximates log2(1+k) for k in [0, 1).
// Precision: 12.29 bits.
var log2Deg5 = Poly{47840369, -208941842, 450346773, -764275149, 1548771675, 0}

// sinDeg2 approximates sin(z*π/2)/z for k = z^2 in [0, 1].
// Precision: 12.55 bits.
var sinDeg2 = Poly{78160664, -691048553, 1686629713}

// sinDeg3 approximates sin(z*π/2)/z for k = z^2 in [0, 1].
// Precision: 19.56 bits.
var sinDeg3 = Poly{-4685819, 85358772, -693560840, 1686629713}

// sinDeg4 approximates sin(z*π/2)/z for k = z^2 in [0, 1].
// Precision: 27.13 bits.
var sinDeg4 = Poly{162679, -5018587, 85566362, -693598342, 1686629713}

// atanDeg4 approximates atan(k) for k in [0, 1).
// Precision: 11.51 bits.
var atanDeg4 = Poly{160726798, -389730008, -1791887, 1074109956, 0}

// rcpDeg4Lut8 approximates 1/(1+k) for k in [0, 1) using 8 segments.
// Precision: 24.07 bits.
var rcpDeg4Lut8 = &Lut{
	bits:  3,
	width: 5,
	coeffs: []int32{
		796773553, -1045765287, 1072588028, -1073726795, 1073741824,
		456453183, -884378041, 1042385791, -1071088216, 1073651788,
		276544830, -708646126, 977216564, -1060211779, 1072962711,
		175386455, -559044324, 893798171, -1039424537, 1071009496,
		115547530, -440524957, 805500803, -1010097984, 1067345574,
		78614874, -348853503, 720007233, -974591889, 1061804940,
		54982413, -278348465, 641021491, -935211003, 1054431901,
		39383664, -223994590, 569927473, -893840914, 1045395281,
	},
}

// sqrtDeg3Lut8 approximates sqrt(1+k) for k in [0, 1) using 8 segments.
// Precision: 23.56 bits.
var sqrtDeg3Lut8 = &Lut{
	bits:  3,
	width: 4,
	coeffs: []int32{
		57835763, -133550637, 536857054, 1073741824,
		43771091, -128445855, 536217068, 1073769530,
		34067722, -121273511, 534434402, 1073918540,
		27129178, -113536005, 531547139, 1074279077,
		22019236, -105917226, 527752485, 1074910452,
		18161894, -98716852, 523266057, 1075843557,
		15188335, -92049348, 518277843, 1077088717,
		12854281, -85939307, 512942507, 1078642770,
	},
}

// rsqrtDeg3Lut16 approximates 1/sqrt(1+k) for k in [0, 1) using 16 segments.
// Precision: 24.59 bits.
var rsqrtDeg3Lut16 = &Lut{
	bits:  4,
	width: 4,
	coeffs: []int32{
		-301579590, 401404709, -536857690, 1073741824,
		-245423010, 391086820, -536203235, 1073727515,
		-202026137, 374967334, -534189977, 1073642965,
		-168017146, 355951863, -530632261, 1073420226,
		-141028602, 335796841, -525604155, 1073001192,
		-119367482, 315555573, -519290609, 1072343850,
		-101802870, 295846496, -511911750, 1071422108,
		-87426328, 277017299, -503685655, 1070223323,
		-75558212, 259246781, -494811415, 1068745317,
		-65683680, 242608795, -485462769, 1066993613,
		-57408255, 227112748, -475787122, 1064979109,
		-50426484, 212729399, -465907121, 1062716254,
		-44499541, 199407328, -455923331, 1060221646,
		-39439007, 187083448, -445917204, 1057513002,
		-35094980, 175689646, -435953979, 1054608400,
		-31347269, 165156947, -426085312, 1051525761,
	},
}

// logDeg3Lut8 approximates ln(1+k) for k in [0, 1) using 8 segments.
// Precision: 15.35 bits.
var logDeg3Lut8 = &Lut{
	bits:  3,
	width: 4,
	coeffs: []int32{
		309628536, -534507419, 1073724054, 0,
		215207992, -502390266, 1069897914, 160852,
		158892020, -461029083, 1059680319, 1010114,
		120758300, -418592578, 1043877151, 2979626,
		93932535, -378620013, 1023979692, 6288435,
		74487828, -342313729, 1001351633, 10996073,
		60012334, -309817259, 977010327, 17079637,
		48377690, -279159893, 950059138, 24984183,
	},
}

// logDeg5Lut8 approximates ln(1+k) for k in [0, 1) using 8 segments.
// Precision: 26.22 bits.
var logDeg5Lut8 = &Lut{
	bits:  3,
	width: 6,
	coeffs: []int32{
		166189159, -263271008, 357682461, -536867223, 1073741814, 0,
		91797130, -221452381, 347549389, -535551692, 1073651718, 2559,
		55429773, -177286543, 325776420, -530104991, 1072960646, 38103,
		35101911, -139778071, 297915163, -519690478, 1071001695, 186416,
		23102252, -110088504, 268427087, -504993810, 1067326167, 555414,
		15701243, -87124604, 239861114, -487185708, 1061762610, 1252264,
		10960108, -69430156, 213404033, -467374507, 1054333366, 2368437,
		7703441, -55178389, 188423866, -445453304, 1044702281, 4063226,
	},
}

// log2Deg3Lut16 approximates log2(1+k) for k in [0, 1) using 16 segments.
// Precision: 18.77 bits.
var log2Deg3Lut16 = &Lut{
	bits:  4,
	width: 4,
	coeffs: []int32{
		479498023, -773622327, 1549078527, 0,
		395931761, -759118188, 1548197526, 18808,
		334661898, -736470659, 1545381846, 136568,
		285596493, -709076642, 1540263722, 456574,
		245720905, -679311878, 1532841693, 1074840,
		212953734, -648695298, 1523292726, 2068966,
		185770248, -618189987, 1511870714, 3495916,
		163026328, -588395848, 1498851584, 5393582,
		143849516, -559673988, 1484504546, 7783737,
		127565758, -532227925, 1469077963, 10675243,
		113648249, -506157040, 1452793288, 14067055,
		101680803, -481491750, 1435843119, 17950929,
		91330868, -458215848, 1418390572, 22314023,
		82328154, -436276909, 1400565714, 27142441,
		74439828, -415566448, 1382437636, 32432624,
		67062062, -394757211, 1362869483, 38567491,
	},
}

// log2Deg4Lut16 approximates log2(1+k) for k in [0, 1) using 16 segments.
// Precision: 25.20 bits.
var log2Deg4Lut16 = &Lut{
	bits:  4,
	width: 5,
	coeffs: []int32{
		-349683705, 514860252, -774521507, 1549081965, 0,
		-271658431, 496776802, -772844764, 1549008620, 1259,
		-217158937, 469966332, -767835780, 1548587446, 14699,
		-175799370, 439219304, -759216789, 1547507699, 65699,
		-143866844, 407471403, -747343665, 1545528123, 189847,
		-118877791, 376365258, -732794890, 1542497870, 426993,
		-99090809, 346778829, -716182669, 1538346679, 816522,
		-83256460, 319137771, -698070351, 1533066538, 1394329,
		-70462839, 293601763, -678942086, 1526693477, 2191193,
		-60034672, 270176585, -659197359, 1519292323, 3232171,
		-51465396, 248781811, -639156567, 1510944906, 4536639,
		-44370441, 229291517, -619070546, 1501741200, 6118756,
		-38454405, 211558058, -599130091, 1491772420, 7988267,
		-33487114, 195423423, -579471329, 1481123710, 10151959,
		-29282549, 180709967, -560158338, 1469854024, 12618653,
		-25515190, 166551747, -540200057, 1457346639, 15558687,
	},
}

// atanDeg3Lut8 approximates atan(k) for k in [0, 1] using 8 segments.
// The extra last row holds atan(1) for k == 1.
// Precision: 17.98 bits.
var atanDeg3Lut8 = &Lut{
	bits:  3,
	width: 4,
	coeffs: []int32{
		-351150132, -463916, 1073745980, 0,
		-289359685, -24349242, 1076929105, -145366,
		-192305259, -97257464, 1095342438, -1708411,
		-91138684, -210466171, 1137733496, -7020039,
		-8856969, -332956892, 1198647251, -17139451,
		46187514, -435267135, 1262120294, -30283758,
		76277334, -502284461, 1311919661, -42630181,
		88081006, -532824470, 1338273149, -50214826,
		0, 0, 0, 843314857,
	},
}

// atanDeg5Lut8 approximates atan(k) for k in [0, 1] using 8 segments.
// The extra last row holds atan(1) for k == 1.
// Precision: 28.06 bits.
var atanDeg5Lut8 = &Lut{
	bits:  3,
	width: 6,
	coeffs: []int32{
		204464916, 1544566, -357994250, 1395, 1073741820, 0,
		119369854, 56362968, -372884915, 2107694, 1073588633, 4534,
		10771151, 190921163, -440520632, 19339556, 1071365339, 120610,
		-64491917, 329189978, -542756389, 57373179, 1064246365, 656900,
		-89925028, 390367074, -601765924, 85907899, 1057328034, 1329793,
		-80805750, 360696628, -563142238, 60762238, 1065515580, 263159,
		-58345538, 276259197, -435975641, -35140679, 1101731779, -5215389,
		-36116738, 179244146, -266417331, -183483381, 1166696761, -16608596,
		0, 0, 0, 0, 0, 843314857,
	},
}
