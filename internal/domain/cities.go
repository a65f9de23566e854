package domain

// Cities is the fixed set of cities served by the railway network.
// Trip origins are validated against this set. Callers must treat it
// as read-only; it never changes at runtime.
var Cities = []string{
	"Arak", "Ardabil", "Urmia", "Isfahan", "Ahvaz", "Ilam",
	"Bojnord", "Bandar Abbas", "Bushehr", "Birjand", "Tabriz",
	"Tehran", "Khorramabad", "Rasht", "Zahedan", "Zanjan", "Sari",
	"Semnan", "Sanandaj", "Shahr-e Kord", "Shiraz", "Qazvin", "Qom",
	"Karaj", "Kermanshah", "Gorgan", "Mashhad", "Hamadan", "Yasuj",
	"Yazd",
}

var cityIndex = func() map[string]struct{} {
	idx := make(map[string]struct{}, len(Cities))
	for _, c := range Cities {
		idx[c] = struct{}{}
	}
	return idx
}()

// KnownCity reports whether name is one of the served cities.
func KnownCity(name string) bool {
	_, ok := cityIndex[name]
	return ok
}
