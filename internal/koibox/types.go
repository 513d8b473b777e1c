package koibox

// Reservation is the payload sent to the Koibox reservation endpoint. The
// JSON keys match what the back-end expects.
type Reservation struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Fecha    string `json:"fecha"`
	Hora     string `json:"hora"`
	Servicio string `json:"servicio"`
}

// Outcome is the binary result of a reservation attempt.
type Outcome int

const (
	OutcomeNotConfirmed Outcome = iota
	OutcomeConfirmed
)

func (o Outcome) String() string {
	if o == OutcomeConfirmed {
		return "confirmed"
	}
	return "not_confirmed"
}
