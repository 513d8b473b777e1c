package dialog

// Canned Spanish replies. Diagnostics never leak to the user; anything that
// goes wrong maps to one of these.
const (
	replyGreeting       = "¡Encantado, %s! 😊 ¿Cómo puedo ayudarte hoy?"
	replyPhoneSaved     = "¡Gracias! Guardé tu número como %s. ¿Quieres reservar una cita?"
	replyMissingSlots   = "Para reservar necesito fecha, hora y el tratamiento. ¿Me lo puedes decir?"
	replyMissingContact = "Necesito tu nombre y teléfono para reservar la cita. ¿Puedes enviármelo?"
	replyConfirmed      = "¡Cita confirmada para %s! 📅 %s a las %s. Nos vemos en Calle Colón 48. 😊"
	replyBookingFailed  = "Lo siento, hubo un problema al reservar. ¿Puedes intentarlo de nuevo?"
	replyLocation       = "Nos encontramos en Calle Colón 48, Valencia. 📍 https://maps.google.com/?q=Calle+Colón+48+Valencia"
	replyFallback       = "¡Hola! Soy Gabriel, el asistente de Sonrisas Hollywood. ¿En qué puedo ayudarte hoy? 😊"
)
