package seed

import (
	"rail_tracker/internal/models"
)

// ts returns a pointer for the nullable time columns. The first stop of a
// route carries no arrival, the last no departure.
func ts(s string) *string {
	return &s
}

// entry pairs one train with its ordered itinerary.
type entry struct {
	Train models.Train
	Route []models.RouteStation
}

// sampleTrains is the Indian Railways sample set the tracker ships with:
// five long-distance services and three Kolkata suburban locals. Station
// times are wall-clock strings, distances cumulative from the origin.
var sampleTrains = []entry{
	{
		Train: models.Train{
			TrainNumber:    "12321",
			TrainName:      "Kolkata Mail",
			FromStation:    "Howrah Junction",
			ToStation:      "New Delhi",
			CurrentStation: "Kanpur Central",
			NextStation:    "Aligarh Junction",
			CurrentLat:     26.4499,
			CurrentLng:     80.3319,
			DelayMinutes:   15,
			Status:         models.StatusDelayed,
		},
		Route: []models.RouteStation{
			{StationName: "Howrah Junction", StationCode: "HWH", ArrivalTime: nil, DepartureTime: ts("06:35"), DistanceKm: 0, Platform: "9", SequenceNumber: 1},
			{StationName: "Asansol Junction", StationCode: "ASN", ArrivalTime: ts("08:50"), DepartureTime: ts("08:55"), DistanceKm: 213, Platform: "3", SequenceNumber: 2},
			{StationName: "Dhanbad Junction", StationCode: "DHN", ArrivalTime: ts("10:10"), DepartureTime: ts("10:15"), DistanceKm: 326, Platform: "2", SequenceNumber: 3},
			{StationName: "Gaya Junction", StationCode: "GAYA", ArrivalTime: ts("12:15"), DepartureTime: ts("12:20"), DistanceKm: 473, Platform: "1", SequenceNumber: 4},
			{StationName: "Mughalsarai Junction", StationCode: "MGS", ArrivalTime: ts("14:30"), DepartureTime: ts("14:40"), DistanceKm: 602, Platform: "5", SequenceNumber: 5},
			{StationName: "Allahabad Junction", StationCode: "ALD", ArrivalTime: ts("16:25"), DepartureTime: ts("16:30"), DistanceKm: 730, Platform: "4", SequenceNumber: 6},
			{StationName: "Kanpur Central", StationCode: "CNB", ArrivalTime: ts("19:05"), DepartureTime: ts("19:15"), DistanceKm: 926, Platform: "6", SequenceNumber: 7},
			{StationName: "Aligarh Junction", StationCode: "ALJN", ArrivalTime: ts("22:50"), DepartureTime: ts("22:52"), DistanceKm: 1170, Platform: "2", SequenceNumber: 8},
			{StationName: "New Delhi", StationCode: "NDLS", ArrivalTime: ts("01:15"), DepartureTime: nil, DistanceKm: 1441, Platform: "7", SequenceNumber: 9},
		},
	},
	{
		Train: models.Train{
			TrainNumber:    "12833",
			TrainName:      "Howrah Express",
			FromStation:    "Ahmedabad Junction",
			ToStation:      "Howrah Junction",
			CurrentStation: "Raipur Junction",
			NextStation:    "Bilaspur Junction",
			CurrentLat:     21.2514,
			CurrentLng:     81.6296,
			DelayMinutes:   0,
			Status:         models.StatusOnTime,
		},
		Route: []models.RouteStation{
			{StationName: "Ahmedabad Junction", StationCode: "ADI", ArrivalTime: nil, DepartureTime: ts("19:50"), DistanceKm: 0, Platform: "5", SequenceNumber: 1},
			{StationName: "Vadodara Junction", StationCode: "BRC", ArrivalTime: ts("21:20"), DepartureTime: ts("21:25"), DistanceKm: 102, Platform: "4", SequenceNumber: 2},
			{StationName: "Surat", StationCode: "ST", ArrivalTime: ts("23:10"), DepartureTime: ts("23:15"), DistanceKm: 264, Platform: "2", SequenceNumber: 3},
			{StationName: "Nagpur Junction", StationCode: "NGP", ArrivalTime: ts("09:45"), DepartureTime: ts("09:55"), DistanceKm: 920, Platform: "3", SequenceNumber: 4},
			{StationName: "Raipur Junction", StationCode: "R", ArrivalTime: ts("14:30"), DepartureTime: ts("14:40"), DistanceKm: 1210, Platform: "1", SequenceNumber: 5},
			{StationName: "Bilaspur Junction", StationCode: "BSP", ArrivalTime: ts("16:35"), DepartureTime: ts("16:45"), DistanceKm: 1330, Platform: "5", SequenceNumber: 6},
			{StationName: "Jharsuguda Junction", StationCode: "JSG", ArrivalTime: ts("20:05"), DepartureTime: ts("20:10"), DistanceKm: 1560, Platform: "2", SequenceNumber: 7},
			{StationName: "Rourkela Junction", StationCode: "ROU", ArrivalTime: ts("21:20"), DepartureTime: ts("21:25"), DistanceKm: 1640, Platform: "4", SequenceNumber: 8},
			{StationName: "Howrah Junction", StationCode: "HWH", ArrivalTime: ts("04:40"), DepartureTime: nil, DistanceKm: 2020, Platform: "8", SequenceNumber: 9},
		},
	},
	{
		Train: models.Train{
			TrainNumber:    "12302",
			TrainName:      "Rajdhani Express",
			FromStation:    "New Delhi",
			ToStation:      "Howrah Junction",
			CurrentStation: "Patna Junction",
			NextStation:    "Mokameh Junction",
			CurrentLat:     25.5941,
			CurrentLng:     85.1376,
			DelayMinutes:   5,
			Status:         models.StatusDelayed,
		},
		Route: []models.RouteStation{
			{StationName: "New Delhi", StationCode: "NDLS", ArrivalTime: nil, DepartureTime: ts("16:55"), DistanceKm: 0, Platform: "2", SequenceNumber: 1},
			{StationName: "Kanpur Central", StationCode: "CNB", ArrivalTime: ts("21:35"), DepartureTime: ts("21:40"), DistanceKm: 441, Platform: "3", SequenceNumber: 2},
			{StationName: "Allahabad Junction", StationCode: "ALD", ArrivalTime: ts("23:48"), DepartureTime: ts("23:50"), DistanceKm: 637, Platform: "6", SequenceNumber: 3},
			{StationName: "Mughalsarai Junction", StationCode: "MGS", ArrivalTime: ts("01:50"), DepartureTime: ts("01:55"), DistanceKm: 765, Platform: "2", SequenceNumber: 4},
			{StationName: "Patna Junction", StationCode: "PNBE", ArrivalTime: ts("05:45"), DepartureTime: ts("05:50"), DistanceKm: 997, Platform: "5", SequenceNumber: 5},
			{StationName: "Mokameh Junction", StationCode: "MKA", ArrivalTime: ts("06:45"), DepartureTime: ts("06:47"), DistanceKm: 1080, Platform: "1", SequenceNumber: 6},
			{StationName: "Howrah Junction", StationCode: "HWH", ArrivalTime: ts("10:15"), DepartureTime: nil, DistanceKm: 1441, Platform: "12", SequenceNumber: 7},
		},
	},
	{
		Train: models.Train{
			TrainNumber:    "12246",
			TrainName:      "Duronto Express",
			FromStation:    "Howrah Junction",
			ToStation:      "Mumbai Central",
			CurrentStation: "Nagpur Junction",
			NextStation:    "Bhusawal Junction",
			CurrentLat:     21.1458,
			CurrentLng:     79.0882,
			DelayMinutes:   0,
			Status:         models.StatusOnTime,
		},
		Route: []models.RouteStation{
			{StationName: "Howrah Junction", StationCode: "HWH", ArrivalTime: nil, DepartureTime: ts("14:00"), DistanceKm: 0, Platform: "14", SequenceNumber: 1},
			{StationName: "Rourkela Junction", StationCode: "ROU", ArrivalTime: ts("19:10"), DepartureTime: ts("19:15"), DistanceKm: 374, Platform: "3", SequenceNumber: 2},
			{StationName: "Jharsuguda Junction", StationCode: "JSG", ArrivalTime: ts("20:25"), DepartureTime: ts("20:27"), DistanceKm: 454, Platform: "2", SequenceNumber: 3},
			{StationName: "Raipur Junction", StationCode: "R", ArrivalTime: ts("00:05"), DepartureTime: ts("00:10"), DistanceKm: 810, Platform: "4", SequenceNumber: 4},
			{StationName: "Nagpur Junction", StationCode: "NGP", ArrivalTime: ts("04:45"), DepartureTime: ts("04:55"), DistanceKm: 1110, Platform: "6", SequenceNumber: 5},
			{StationName: "Bhusawal Junction", StationCode: "BSL", ArrivalTime: ts("09:00"), DepartureTime: ts("09:05"), DistanceKm: 1430, Platform: "1", SequenceNumber: 6},
			{StationName: "Mumbai Central", StationCode: "BCT", ArrivalTime: ts("14:50"), DepartureTime: nil, DistanceKm: 1840, Platform: "9", SequenceNumber: 7},
		},
	},
	{
		Train: models.Train{
			TrainNumber:    "12951",
			TrainName:      "Mumbai Rajdhani",
			FromStation:    "Mumbai Central",
			ToStation:      "New Delhi",
			CurrentStation: "Vadodara Junction",
			NextStation:    "Ratlam Junction",
			CurrentLat:     22.3072,
			CurrentLng:     73.1812,
			DelayMinutes:   10,
			Status:         models.StatusDelayed,
		},
		Route: []models.RouteStation{
			{StationName: "Mumbai Central", StationCode: "BCT", ArrivalTime: nil, DepartureTime: ts("16:40"), DistanceKm: 0, Platform: "7", SequenceNumber: 1},
			{StationName: "Surat", StationCode: "ST", ArrivalTime: ts("20:20"), DepartureTime: ts("20:25"), DistanceKm: 263, Platform: "5", SequenceNumber: 2},
			{StationName: "Vadodara Junction", StationCode: "BRC", ArrivalTime: ts("22:10"), DepartureTime: ts("22:15"), DistanceKm: 394, Platform: "2", SequenceNumber: 3},
			{StationName: "Ratlam Junction", StationCode: "RTM", ArrivalTime: ts("01:30"), DepartureTime: ts("01:35"), DistanceKm: 656, Platform: "4", SequenceNumber: 4},
			{StationName: "Kota Junction", StationCode: "KOTA", ArrivalTime: ts("04:40"), DepartureTime: ts("04:45"), DistanceKm: 905, Platform: "3", SequenceNumber: 5},
			{StationName: "Mathura Junction", StationCode: "MTJ", ArrivalTime: ts("08:30"), DepartureTime: ts("08:32"), DistanceKm: 1252, Platform: "6", SequenceNumber: 6},
			{StationName: "New Delhi", StationCode: "NDLS", ArrivalTime: ts("10:10"), DepartureTime: nil, DistanceKm: 1384, Platform: "11", SequenceNumber: 7},
		},
	},
	{
		Train: models.Train{
			TrainNumber:    "30311",
			TrainName:      "Sealdah-Naihati Local",
			FromStation:    "Sealdah",
			ToStation:      "Naihati",
			CurrentStation: "Dum Dum Junction",
			NextStation:    "Belgharia",
			CurrentLat:     22.6277,
			CurrentLng:     88.4171,
			DelayMinutes:   0,
			Status:         models.StatusOnTime,
		},
		Route: []models.RouteStation{
			{StationName: "Sealdah", StationCode: "SDAH", ArrivalTime: nil, DepartureTime: ts("08:15"), DistanceKm: 0, Platform: "12", SequenceNumber: 1},
			{StationName: "Dum Dum Junction", StationCode: "DDJ", ArrivalTime: ts("08:28"), DepartureTime: ts("08:30"), DistanceKm: 8, Platform: "2", SequenceNumber: 2},
			{StationName: "Belgharia", StationCode: "BLH", ArrivalTime: ts("08:35"), DepartureTime: ts("08:36"), DistanceKm: 11, Platform: "1", SequenceNumber: 3},
			{StationName: "Agarpara", StationCode: "AGP", ArrivalTime: ts("08:41"), DepartureTime: ts("08:42"), DistanceKm: 14, Platform: "1", SequenceNumber: 4},
			{StationName: "Sodpur", StationCode: "SEP", ArrivalTime: ts("08:47"), DepartureTime: ts("08:48"), DistanceKm: 17, Platform: "2", SequenceNumber: 5},
			{StationName: "Khardaha", StationCode: "KHA", ArrivalTime: ts("08:53"), DepartureTime: ts("08:54"), DistanceKm: 21, Platform: "1", SequenceNumber: 6},
			{StationName: "Halisahar", StationCode: "HLS", ArrivalTime: ts("09:00"), DepartureTime: ts("09:01"), DistanceKm: 25, Platform: "1", SequenceNumber: 7},
			{StationName: "Naihati", StationCode: "NH", ArrivalTime: ts("09:08"), DepartureTime: nil, DistanceKm: 30, Platform: "3", SequenceNumber: 8},
		},
	},
	{
		Train: models.Train{
			TrainNumber:    "30411",
			TrainName:      "Howrah-Bandel Local",
			FromStation:    "Howrah Junction",
			ToStation:      "Bandel Junction",
			CurrentStation: "Bally",
			NextStation:    "Belur",
			CurrentLat:     22.6533,
			CurrentLng:     88.3396,
			DelayMinutes:   2,
			Status:         models.StatusDelayed,
		},
		Route: []models.RouteStation{
			{StationName: "Howrah Junction", StationCode: "HWH", ArrivalTime: nil, DepartureTime: ts("09:00"), DistanceKm: 0, Platform: "18", SequenceNumber: 1},
			{StationName: "Bally", StationCode: "BLY", ArrivalTime: ts("09:07"), DepartureTime: ts("09:08"), DistanceKm: 4, Platform: "1", SequenceNumber: 2},
			{StationName: "Belur", StationCode: "BEQ", ArrivalTime: ts("09:12"), DepartureTime: ts("09:13"), DistanceKm: 7, Platform: "1", SequenceNumber: 3},
			{StationName: "Liluah", StationCode: "LLH", ArrivalTime: ts("09:18"), DepartureTime: ts("09:19"), DistanceKm: 10, Platform: "2", SequenceNumber: 4},
			{StationName: "Naihati", StationCode: "NH", ArrivalTime: ts("09:35"), DepartureTime: ts("09:36"), DistanceKm: 28, Platform: "4", SequenceNumber: 5},
			{StationName: "Bandel Junction", StationCode: "BDC", ArrivalTime: ts("09:55"), DepartureTime: nil, DistanceKm: 42, Platform: "2", SequenceNumber: 6},
		},
	},
	{
		Train: models.Train{
			TrainNumber:    "34711",
			TrainName:      "Sealdah-Diamond Harbor Local",
			FromStation:    "Sealdah",
			ToStation:      "Diamond Harbor",
			CurrentStation: "Ballygunge Junction",
			NextStation:    "Park Circus",
			CurrentLat:     22.5326,
			CurrentLng:     88.3657,
			DelayMinutes:   0,
			Status:         models.StatusOnTime,
		},
		Route: []models.RouteStation{
			{StationName: "Sealdah", StationCode: "SDAH", ArrivalTime: nil, DepartureTime: ts("10:30"), DistanceKm: 0, Platform: "9", SequenceNumber: 1},
			{StationName: "Ballygunge Junction", StationCode: "BGB", ArrivalTime: ts("10:38"), DepartureTime: ts("10:39"), DistanceKm: 5, Platform: "3", SequenceNumber: 2},
			{StationName: "Park Circus", StationCode: "PQS", ArrivalTime: ts("10:42"), DepartureTime: ts("10:43"), DistanceKm: 7, Platform: "1", SequenceNumber: 3},
			{StationName: "Majerhat", StationCode: "MJT", ArrivalTime: ts("10:50"), DepartureTime: ts("10:51"), DistanceKm: 11, Platform: "2", SequenceNumber: 4},
			{StationName: "Sonarpur Junction", StationCode: "SPR", ArrivalTime: ts("11:10"), DepartureTime: ts("11:11"), DistanceKm: 25, Platform: "1", SequenceNumber: 5},
			{StationName: "Diamond Harbor", StationCode: "DHH", ArrivalTime: ts("12:05"), DepartureTime: nil, DistanceKm: 53, Platform: "1", SequenceNumber: 6},
		},
	},
}
