package kenyaloc

// Kenya returns the built-in gazetteer: the 47 counties with their main
// towns. Nairobi is declared first; the remaining counties follow the
// official county code order. The first town of each county is its seat.
//
// Each call returns a fresh copy.
func Kenya() Gazetteer {
	return kenyaCounties.clone()
}

var kenyaCounties = Gazetteer{
	{Name: "Nairobi", Towns: []Town{
		{Name: "Nairobi CBD", Lat: -1.2864, Lon: 36.8172, Aliases: []string{"nairobi", "cbd", "nairobi city"}},
		{Name: "Westlands", Lat: -1.2676, Lon: 36.8108},
		{Name: "Kilimani", Lat: -1.2921, Lon: 36.7856},
		{Name: "Eastleigh", Lat: -1.2756, Lon: 36.8516},
		{Name: "Kibera", Lat: -1.3133, Lon: 36.7879},
		{Name: "Langata", Lat: -1.3622, Lon: 36.7513, Aliases: []string{"lang'ata"}},
		{Name: "Karen", Lat: -1.3194, Lon: 36.7073},
		{Name: "Embakasi", Lat: -1.3190, Lon: 36.8942},
		{Name: "Kasarani", Lat: -1.2215, Lon: 36.8980},
	}},
	{Name: "Mombasa", Towns: []Town{
		{Name: "Mombasa Island", Lat: -4.0435, Lon: 39.6682, Aliases: []string{"mombasa", "msa"}},
		{Name: "Nyali", Lat: -4.0226, Lon: 39.7196},
		{Name: "Likoni", Lat: -4.0833, Lon: 39.6667},
		{Name: "Bamburi", Lat: -3.9970, Lon: 39.7190},
	}},
	{Name: "Kwale", Towns: []Town{
		{Name: "Kwale", Lat: -4.1737, Lon: 39.4521},
		{Name: "Ukunda", Lat: -4.2869, Lon: 39.5655, Aliases: []string{"diani"}},
		{Name: "Msambweni", Lat: -4.4667, Lon: 39.4833},
	}},
	{Name: "Kilifi", Towns: []Town{
		{Name: "Kilifi", Lat: -3.6305, Lon: 39.8499},
		{Name: "Malindi", Lat: -3.2192, Lon: 40.1169},
		{Name: "Mtwapa", Lat: -3.9500, Lon: 39.7333},
		{Name: "Watamu", Lat: -3.3540, Lon: 40.0240},
	}},
	{Name: "Tana River", Towns: []Town{
		{Name: "Hola", Lat: -1.5000, Lon: 40.0333},
		{Name: "Garsen", Lat: -2.2667, Lon: 40.1167},
	}},
	{Name: "Lamu", Towns: []Town{
		{Name: "Lamu", Lat: -2.2717, Lon: 40.9020, Aliases: []string{"lamu town"}},
		{Name: "Mpeketoni", Lat: -2.3906, Lon: 40.6953},
	}},
	{Name: "Taita-Taveta", Towns: []Town{
		{Name: "Voi", Lat: -3.3961, Lon: 38.5561},
		{Name: "Wundanyi", Lat: -3.4000, Lon: 38.3667},
		{Name: "Taveta", Lat: -3.3985, Lon: 37.6760},
	}},
	{Name: "Garissa", Towns: []Town{
		{Name: "Garissa", Lat: -0.4536, Lon: 39.6401},
		{Name: "Dadaab", Lat: 0.0553, Lon: 40.3086},
	}},
	{Name: "Wajir", Towns: []Town{
		{Name: "Wajir", Lat: 1.7471, Lon: 40.0573},
	}},
	{Name: "Mandera", Towns: []Town{
		{Name: "Mandera", Lat: 3.9366, Lon: 41.8670},
		{Name: "El Wak", Lat: 2.8028, Lon: 40.9275},
	}},
	{Name: "Marsabit", Towns: []Town{
		{Name: "Marsabit", Lat: 2.3284, Lon: 37.9899},
		{Name: "Moyale", Lat: 3.5270, Lon: 39.0560},
	}},
	{Name: "Isiolo", Towns: []Town{
		{Name: "Isiolo", Lat: 0.3546, Lon: 37.5822},
	}},
	{Name: "Meru", Towns: []Town{
		{Name: "Meru", Lat: 0.0470, Lon: 37.6498, Aliases: []string{"meru town"}},
		{Name: "Maua", Lat: 0.2333, Lon: 37.9333},
		{Name: "Nkubu", Lat: -0.0667, Lon: 37.6667},
	}},
	{Name: "Tharaka-Nithi", Towns: []Town{
		{Name: "Chuka", Lat: -0.3333, Lon: 37.6500},
		{Name: "Kathwana", Lat: -0.2486, Lon: 37.8836},
		{Name: "Marimanti", Lat: -0.1667, Lon: 37.9667},
	}},
	{Name: "Embu", Towns: []Town{
		{Name: "Embu", Lat: -0.5310, Lon: 37.4506},
		{Name: "Runyenjes", Lat: -0.4167, Lon: 37.5667},
	}},
	{Name: "Kitui", Towns: []Town{
		{Name: "Kitui", Lat: -1.3670, Lon: 38.0106},
		{Name: "Mwingi", Lat: -0.9333, Lon: 38.0667},
	}},
	{Name: "Machakos", Towns: []Town{
		{Name: "Machakos", Lat: -1.5177, Lon: 37.2634},
		{Name: "Athi River", Lat: -1.4561, Lon: 36.9783, Aliases: []string{"mavoko"}},
		{Name: "Kangundo", Lat: -1.3000, Lon: 37.3500},
	}},
	{Name: "Makueni", Towns: []Town{
		{Name: "Wote", Lat: -1.7833, Lon: 37.6333},
		{Name: "Emali", Lat: -2.0833, Lon: 37.4667},
		{Name: "Mtito Andei", Lat: -2.6900, Lon: 38.1667},
	}},
	{Name: "Nyandarua", Towns: []Town{
		{Name: "Ol Kalou", Lat: -0.2667, Lon: 36.3833, Aliases: []string{"olkalou"}},
		{Name: "Engineer", Lat: -0.6000, Lon: 36.5833},
	}},
	{Name: "Nyeri", Towns: []Town{
		{Name: "Nyeri", Lat: -0.4201, Lon: 36.9476},
		{Name: "Karatina", Lat: -0.4833, Lon: 37.1333},
		{Name: "Othaya", Lat: -0.5500, Lon: 36.9333},
	}},
	{Name: "Kirinyaga", Towns: []Town{
		{Name: "Kerugoya", Lat: -0.4989, Lon: 37.2803},
		{Name: "Kutus", Lat: -0.5640, Lon: 37.3230},
		{Name: "Wang'uru", Lat: -0.6833, Lon: 37.3667, Aliases: []string{"mwea"}},
	}},
	{Name: "Murang'a", Towns: []Town{
		{Name: "Murang'a", Lat: -0.7210, Lon: 37.1526, Aliases: []string{"muranga"}},
		{Name: "Kenol", Lat: -0.9500, Lon: 37.1000},
		{Name: "Kangema", Lat: -0.6833, Lon: 36.9667},
	}},
	{Name: "Kiambu", Towns: []Town{
		{Name: "Kiambu", Lat: -1.1714, Lon: 36.8356},
		{Name: "Thika", Lat: -1.0333, Lon: 37.0693},
		{Name: "Ruiru", Lat: -1.1466, Lon: 36.9609},
		{Name: "Limuru", Lat: -1.1136, Lon: 36.6422},
		{Name: "Kikuyu", Lat: -1.2463, Lon: 36.6629},
	}},
	{Name: "Turkana", Towns: []Town{
		{Name: "Lodwar", Lat: 3.1191, Lon: 35.5973},
		{Name: "Kakuma", Lat: 3.7167, Lon: 34.8667},
	}},
	{Name: "West Pokot", Towns: []Town{
		{Name: "Kapenguria", Lat: 1.2389, Lon: 35.1119},
	}},
	{Name: "Samburu", Towns: []Town{
		{Name: "Maralal", Lat: 1.0968, Lon: 36.6980},
	}},
	{Name: "Trans-Nzoia", Towns: []Town{
		{Name: "Kitale", Lat: 1.0157, Lon: 35.0062},
		{Name: "Endebess", Lat: 1.0833, Lon: 34.8500},
	}},
	{Name: "Uasin Gishu", Towns: []Town{
		{Name: "Eldoret", Lat: 0.5143, Lon: 35.2698, Aliases: []string{"eldy"}},
		{Name: "Burnt Forest", Lat: 0.2167, Lon: 35.4333},
		{Name: "Turbo", Lat: 0.6333, Lon: 35.0500},
	}},
	{Name: "Elgeyo-Marakwet", Towns: []Town{
		{Name: "Iten", Lat: 0.6703, Lon: 35.5081},
		{Name: "Kapsowar", Lat: 0.9833, Lon: 35.5667},
	}},
	{Name: "Nandi", Towns: []Town{
		{Name: "Kapsabet", Lat: 0.2039, Lon: 35.1050},
		{Name: "Nandi Hills", Lat: 0.1000, Lon: 35.1833},
	}},
	{Name: "Baringo", Towns: []Town{
		{Name: "Kabarnet", Lat: 0.4919, Lon: 35.7430},
		{Name: "Eldama Ravine", Lat: 0.0500, Lon: 35.7167},
		{Name: "Marigat", Lat: 0.4667, Lon: 35.9833},
	}},
	{Name: "Laikipia", Towns: []Town{
		{Name: "Nanyuki", Lat: 0.0167, Lon: 37.0667},
		{Name: "Nyahururu", Lat: 0.0333, Lon: 36.3667, Aliases: []string{"thomson's falls"}},
		{Name: "Rumuruti", Lat: 0.2667, Lon: 36.5333},
	}},
	{Name: "Nakuru", Towns: []Town{
		{Name: "Nakuru", Lat: -0.3031, Lon: 36.0800, Aliases: []string{"nakuru town"}},
		{Name: "Naivasha", Lat: -0.7167, Lon: 36.4333},
		{Name: "Gilgil", Lat: -0.5000, Lon: 36.3167},
		{Name: "Molo", Lat: -0.2500, Lon: 35.7333},
		{Name: "Njoro", Lat: -0.3333, Lon: 35.9333},
	}},
	{Name: "Narok", Towns: []Town{
		{Name: "Narok", Lat: -1.0783, Lon: 35.8600},
		{Name: "Kilgoris", Lat: -1.0000, Lon: 34.8833},
	}},
	{Name: "Kajiado", Towns: []Town{
		{Name: "Kajiado", Lat: -1.8524, Lon: 36.7768},
		{Name: "Kitengela", Lat: -1.4730, Lon: 36.9590},
		{Name: "Ngong", Lat: -1.3616, Lon: 36.6553},
		{Name: "Ongata Rongai", Lat: -1.3960, Lon: 36.7440, Aliases: []string{"rongai"}},
		{Name: "Namanga", Lat: -2.5500, Lon: 36.7833},
	}},
	{Name: "Kericho", Towns: []Town{
		{Name: "Kericho", Lat: -0.3689, Lon: 35.2863},
		{Name: "Litein", Lat: -0.5833, Lon: 35.1833},
	}},
	{Name: "Bomet", Towns: []Town{
		{Name: "Bomet", Lat: -0.7813, Lon: 35.3416},
		{Name: "Sotik", Lat: -0.6833, Lon: 35.1167},
	}},
	{Name: "Kakamega", Towns: []Town{
		{Name: "Kakamega", Lat: 0.2827, Lon: 34.7519},
		{Name: "Mumias", Lat: 0.3333, Lon: 34.4833},
		{Name: "Malava", Lat: 0.4500, Lon: 34.8500},
	}},
	{Name: "Vihiga", Towns: []Town{
		{Name: "Mbale", Lat: 0.0833, Lon: 34.7167, Aliases: []string{"maragoli"}},
		{Name: "Luanda", Lat: 0.0333, Lon: 34.6167},
	}},
	{Name: "Bungoma", Towns: []Town{
		{Name: "Bungoma", Lat: 0.5635, Lon: 34.5606},
		{Name: "Webuye", Lat: 0.6167, Lon: 34.7667},
		{Name: "Kimilili", Lat: 0.7833, Lon: 34.7167},
	}},
	{Name: "Busia", Towns: []Town{
		{Name: "Busia", Lat: 0.4608, Lon: 34.1115},
		{Name: "Malaba", Lat: 0.6333, Lon: 34.2833},
	}},
	{Name: "Siaya", Towns: []Town{
		{Name: "Siaya", Lat: 0.0607, Lon: 34.2881},
		{Name: "Bondo", Lat: -0.1000, Lon: 34.2667},
		{Name: "Ugunja", Lat: 0.1833, Lon: 34.3000},
	}},
	{Name: "Kisumu", Towns: []Town{
		{Name: "Kisumu City", Lat: -0.0917, Lon: 34.7680, Aliases: []string{"kisumu"}},
		{Name: "Ahero", Lat: -0.1667, Lon: 34.9167},
		{Name: "Maseno", Lat: -0.0042, Lon: 34.6000},
		{Name: "Muhoroni", Lat: -0.1500, Lon: 35.2000},
	}},
	{Name: "Homa Bay", Towns: []Town{
		{Name: "Homa Bay", Lat: -0.5273, Lon: 34.4571},
		{Name: "Mbita", Lat: -0.4333, Lon: 34.2000},
		{Name: "Oyugis", Lat: -0.5100, Lon: 34.7350},
		{Name: "Kendu Bay", Lat: -0.3667, Lon: 34.6500},
	}},
	{Name: "Migori", Towns: []Town{
		{Name: "Migori", Lat: -1.0634, Lon: 34.4731},
		{Name: "Awendo", Lat: -0.9000, Lon: 34.5333},
		{Name: "Rongo", Lat: -0.7667, Lon: 34.6000},
	}},
	{Name: "Kisii", Towns: []Town{
		{Name: "Kisii", Lat: -0.6817, Lon: 34.7667},
		{Name: "Ogembo", Lat: -0.8000, Lon: 34.7333},
	}},
	{Name: "Nyamira", Towns: []Town{
		{Name: "Nyamira", Lat: -0.5633, Lon: 34.9358},
		{Name: "Keroka", Lat: -0.7760, Lon: 34.9460},
	}},
}
