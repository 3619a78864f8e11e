package dmc

// threadTable is the fixed DMC thread reference list. Codes and names follow
// the official DMC chart; hex values are the commonly published sRGB
// approximations. The table is loaded once into an indexed catalog and never
// mutated.
var threadTable = []struct {
	code, name, hex string
}{
	{"B5200", "Snow White", "#FFFFFF"},
	{"White", "White", "#FEFEFE"},
	{"Ecru", "Ecru", "#F0EBD5"},
	{"822", "Light Beige Gray", "#E7DECC"},
	{"644", "Medium Beige Gray", "#D9D3C3"},
	{"642", "Dark Beige Gray", "#C2B9A6"},
	{"640", "Very Dark Beige Gray", "#9B8F7E"},
	{"3072", "Very Light Beaver Gray", "#E1E5DE"},
	{"648", "Light Beaver Gray", "#BCC3BB"},
	{"647", "Medium Beaver Gray", "#A9B0A8"},
	{"646", "Dark Beaver Gray", "#8D9691"},
	{"645", "Very Dark Beaver Gray", "#6C7670"},
	{"310", "Black", "#000000"},
	{"3799", "Very Dark Pewter Gray", "#5B5F5F"},
	{"413", "Dark Pewter Gray", "#656666"},
	{"3787", "Dark Brown Gray", "#6B675E"},
	{"762", "Very Light Pearl Gray", "#E6E6E6"},
	{"415", "Pearl Gray", "#D3D3D3"},
	{"318", "Light Steel Gray", "#ADB0AE"},
	{"414", "Dark Steel Gray", "#8A8A8A"},
	{"317", "Pewter Gray", "#6B6D6D"},
	{"535", "Very Light Ash Gray", "#696959"},
	{"3024", "Very Light Brown Gray", "#D0CCBE"},
	{"3023", "Light Brown Gray", "#B5A588"},
	{"666", "Bright Red", "#EC2130"},
	{"321", "Red", "#CE1938"},
	{"304", "Medium Red", "#B11731"},
	{"498", "Dark Red", "#A81428"},
	{"816", "Garnet", "#91182E"},
	{"815", "Medium Garnet", "#7C1D2B"},
	{"814", "Dark Garnet", "#6D1329"},
	{"760", "Salmon", "#F5BEC2"},
	{"3712", "Medium Salmon", "#EA9CA3"},
	{"3328", "Dark Salmon", "#E07681"},
	{"347", "Very Dark Salmon", "#BF1733"},
	{"353", "Peach", "#FECDCD"},
	{"352", "Light Coral", "#FBB9AA"},
	{"351", "Coral", "#EA8579"},
	{"350", "Medium Coral", "#E34948"},
	{"349", "Dark Coral", "#C81732"},
	{"817", "Very Dark Coral Red", "#BA1730"},
	{"818", "Baby Pink", "#FFD9DB"},
	{"963", "Ultra Very Light Dusty Rose", "#FFCCD1"},
	{"3716", "Very Light Dusty Rose", "#FFBAC7"},
	{"962", "Medium Dusty Rose", "#E97D8B"},
	{"961", "Dark Dusty Rose", "#CE486E"},
	{"3833", "Light Raspberry", "#E95077"},
	{"3832", "Medium Raspberry", "#D13D6F"},
	{"3831", "Dark Raspberry", "#B0194B"},
	{"3350", "Ultra Dark Dusty Rose", "#B52D5C"},
	{"150", "Ultra Very Light Dusty Rose", "#F8D5D8"},
	{"151", "Very Light Dusty Rose", "#EFB1BA"},
	{"152", "Medium Light Shell Pink", "#DD88A0"},
	{"3354", "Light Dusty Rose", "#D887A6"},
	{"3733", "Dusty Rose", "#CD5E8D"},
	{"3731", "Very Dark Dusty Rose", "#C0476C"},
	{"3824", "Light Apricot", "#FECABE"},
	{"3341", "Apricot", "#FFAB8A"},
	{"3340", "Medium Apricot", "#FF8262"},
	{"608", "Bright Orange", "#FF6F30"},
	{"606", "Bright Orange-Red", "#FA3F1B"},
	{"970", "Light Pumpkin", "#FF901F"},
	{"971", "Pumpkin", "#FF8600"},
	{"972", "Deep Canary", "#FFB900"},
	{"3853", "Dark Autumn Gold", "#F59B5A"},
	{"3854", "Medium Autumn Gold", "#F68A5C"},
	{"3855", "Light Autumn Gold", "#FBBF99"},
	{"722", "Light Orange Spice", "#F6A667"},
	{"720", "Dark Orange Spice", "#E94A07"},
	{"721", "Medium Orange Spice", "#F25D3D"},
	{"947", "Burnt Orange", "#FF5F01"},
	{"445", "Light Lemon", "#FFFDDB"},
	{"307", "Lemon", "#FFE600"},
	{"973", "Bright Canary", "#FFE529"},
	{"444", "Dark Lemon", "#FFE00B"},
	{"3078", "Very Light Golden Yellow", "#FFF8DC"},
	{"727", "Very Light Topaz", "#FFF785"},
	{"726", "Light Topaz", "#FFD747"},
	{"725", "Topaz", "#FFC723"},
	{"3820", "Dark Straw", "#DDB900"},
	{"783", "Medium Topaz", "#D68700"},
	{"782", "Dark Topaz", "#CB7800"},
	{"781", "Very Dark Topaz", "#985F00"},
	{"780", "Ultra Very Dark Topaz", "#8C5400"},
	{"676", "Light Old Gold", "#ECBB5C"},
	{"729", "Medium Old Gold", "#D1A140"},
	{"680", "Dark Old Gold", "#B98C27"},
	{"3829", "Very Dark Old Gold", "#9F6F00"},
	{"3822", "Light Straw", "#F0DE9C"},
	{"3821", "Straw", "#E0C47A"},
	{"704", "Bright Chartreuse", "#CCF500"},
	{"703", "Chartreuse", "#A6D700"},
	{"702", "Kelly Green", "#86B500"},
	{"701", "Light Green", "#5D9F00"},
	{"700", "Bright Green", "#2E7D09"},
	{"699", "Green", "#136C00"},
	{"907", "Light Parrot Green", "#D0F200"},
	{"906", "Medium Parrot Green", "#9DB700"},
	{"905", "Dark Parrot Green", "#6F9800"},
	{"904", "Very Dark Parrot Green", "#4B7800"},
	{"164", "Light Forest Green", "#C7D9AD"},
	{"989", "Forest Green", "#88A84C"},
	{"988", "Medium Forest Green", "#77923C"},
	{"987", "Dark Forest Green", "#5F7D2D"},
	{"986", "Very Dark Forest Green", "#466B28"},
	{"3348", "Light Yellow Green", "#D8E79E"},
	{"3347", "Medium Yellow Green", "#A3C85E"},
	{"3346", "Hunter Green", "#77A058"},
	{"3345", "Dark Hunter Green", "#66834A"},
	{"772", "Very Light Yellow Green", "#E4F3CC"},
	{"3364", "Pine Green", "#546E4D"},
	{"320", "Medium Pistachio Green", "#8D9E57"},
	{"367", "Dark Pistachio Green", "#6B7B3C"},
	{"319", "Very Dark Pistachio Green", "#40502C"},
	{"964", "Light Seagreen", "#C1E2DC"},
	{"959", "Medium Seagreen", "#89C9BC"},
	{"958", "Dark Seagreen", "#52B5A3"},
	{"3812", "Very Dark Seagreen", "#2E917F"},
	{"3811", "Very Light Turquoise", "#C2E3DF"},
	{"598", "Light Turquoise", "#9FCECE"},
	{"597", "Turquoise", "#6CB5BD"},
	{"3810", "Dark Turquoise", "#4D999A"},
	{"3809", "Very Dark Turquoise", "#328082"},
	{"928", "Very Light Gray Green", "#E7EDE7"},
	{"927", "Light Gray Green", "#BFCEC4"},
	{"926", "Medium Gray Green", "#98B3A6"},
	{"3768", "Dark Gray Green", "#5B7B6B"},
	{"3841", "Pale Baby Blue", "#CEDEED"},
	{"3840", "Light Baby Blue", "#A8C9E8"},
	{"3839", "Medium Baby Blue", "#6495C8"},
	{"3838", "Dark Baby Blue", "#3A75AE"},
	{"800", "Pale Delft Blue", "#C9E4F2"},
	{"809", "Delft Blue", "#94B7D5"},
	{"799", "Medium Delft Blue", "#7393B7"},
	{"798", "Dark Delft Blue", "#5174A0"},
	{"797", "Royal Blue", "#13438D"},
	{"796", "Dark Royal Blue", "#123071"},
	{"3325", "Light Baby Blue", "#BFD8EB"},
	{"3755", "Baby Blue", "#8DADD3"},
	{"334", "Medium Baby Blue", "#5D8AB8"},
	{"322", "Dark Baby Blue", "#2F5580"},
	{"312", "Very Dark Baby Blue", "#13416D"},
	{"311", "Medium Navy Blue", "#1C3A5C"},
	{"336", "Navy Blue", "#13294B"},
	{"823", "Dark Navy Blue", "#13294B"},
	{"939", "Very Dark Navy Blue", "#13213C"},
	{"3747", "Very Light Blue Violet", "#E3E5EC"},
	{"341", "Light Blue Violet", "#B5CAE6"},
	{"3746", "Dark Blue Violet", "#948FCC"},
	{"333", "Very Dark Blue Violet", "#6E5B9B"},
	{"3837", "Ultra Dark Lavender", "#6D417E"},
	{"211", "Light Lavender", "#E8D8EA"},
	{"210", "Medium Lavender", "#C68FB9"},
	{"209", "Dark Lavender", "#9C4E97"},
	{"208", "Very Dark Lavender", "#7F2A7B"},
	{"3836", "Light Grape", "#B78BC0"},
	{"3835", "Medium Grape", "#924C8F"},
	{"3834", "Dark Grape", "#742A6E"},
	{"154", "Very Dark Grape", "#551839"},
	{"153", "Very Light Violet", "#E8CCDF"},
	{"3743", "Very Light Antique Violet", "#E3D7E2"},
	{"3042", "Light Antique Violet", "#D7BFD4"},
	{"3041", "Medium Antique Violet", "#C6A9C1"},
	{"3740", "Dark Antique Violet", "#A17896"},
	{"3865", "Winter White", "#FAF9F4"},
	{"739", "Ultra Very Light Tan", "#F5EDD3"},
	{"738", "Very Light Tan", "#EBCBA1"},
	{"437", "Light Tan", "#D9A964"},
	{"436", "Tan", "#C68638"},
	{"435", "Very Light Brown", "#945B25"},
	{"434", "Light Brown", "#944B14"},
	{"433", "Medium Brown", "#85511F"},
	{"801", "Dark Coffee Brown", "#693F17"},
	{"898", "Very Dark Coffee Brown", "#5C3A1F"},
	{"938", "Ultra Dark Coffee Brown", "#4A2812"},
	{"3371", "Black Brown", "#301904"},
	{"543", "Ultra Very Light Beige Brown", "#F0DBC8"},
	{"3864", "Light Mocha Beige", "#C9A992"},
	{"3863", "Medium Mocha Beige", "#A4826A"},
	{"3862", "Dark Mocha Beige", "#856551"},
	{"3861", "Light Cocoa", "#A07959"},
	{"3860", "Cocoa", "#78503B"},
	{"3031", "Very Dark Mocha Brown", "#54372A"},
	{"3021", "Very Dark Brown Gray", "#5B4733"},
	{"948", "Very Light Peach", "#FED9C7"},
	{"754", "Light Peach", "#F9CEB9"},
	{"945", "Tawny", "#F6C199"},
	{"3778", "Light Terra Cotta", "#DD967F"},
	{"356", "Medium Terra Cotta", "#C66F5C"},
	{"3830", "Terra Cotta", "#B85A41"},
	{"355", "Dark Terra Cotta", "#A44037"},
	{"3777", "Very Dark Terra Cotta", "#8E3031"},
}
