package observability

import (
	"strings"

	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF for logging. Punctuation is ignored, so both the
// masked form "111.222.333-44" and bare digits are accepted.
func MaskCPF(cpf string) string {
	digits := onlyDigits(cpf)
	if len(digits) != 11 {
		return "***.***.***-**"
	}
	return digits[:3] + ".***." + digits[6:9] + "-**"
}

// MaskEmail keeps the first character of the local part and the domain
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// MaskSensitiveData masks sensitive data in a map
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	sensitiveFields := []string{"cpf", "motherName", "phone", "birthDate", "password", "agency", "account"}
	masked := make(map[string]interface{}, len(data))

	for k, v := range data {
		if contains(sensitiveFields, k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
