package resume

// sample is the process-wide record shown by every template. It is never
// handed out directly; Sample returns a copy.
var sample = ResumeRecord{
	Name:  "María Fernanda López",
	Title: "Ingeniera de Software Senior",
	Contact: Contact{
		Email:    "maria.lopez@example.com",
		Phone:    "+34 600 123 456",
		Location: "Madrid, España",
		Website:  "https://marialopez.dev",
		LinkedIn: "https://www.linkedin.com/in/marialopez",
		GitHub:   "https://github.com/marialopez",
	},
	Summary: "Ingeniera con más de 9 años construyendo plataformas web y servicios distribuidos. " +
		"Combino diseño de producto, arquitectura y liderazgo técnico para entregar software fiable, " +
		"medible y fácil de mantener.",
	Experience: []Experience{
		{
			Company: "Nimbus Cloud",
			Role:    "Tech Lead",
			Start:   "2021",
			End:     "Actualidad",
			Bullets: []string{
				"Lideré un equipo de 7 personas en la migración a microservicios, reduciendo la latencia un 38%.",
				"Diseñé la plataforma de observabilidad interna usada por 40 servicios.",
				"Introduje revisiones de arquitectura y guías de estilo adoptadas por toda la organización.",
			},
		},
		{
			Company: "Fintech Andes",
			Role:    "Desarrolladora Backend",
			Start:   "2018",
			End:     "2021",
			Bullets: []string{
				"Construí la API de pagos que procesa 2M de transacciones mensuales.",
				"Automaticé conciliaciones bancarias, ahorrando 120 horas de trabajo manual al mes.",
			},
		},
		{
			Company: "Estudio Pixel",
			Role:    "Desarrolladora Full Stack",
			Start:   "2015",
			End:     "2018",
			Bullets: []string{
				"Desarrollé sitios y tiendas en línea para más de 30 clientes.",
				"Implementé pruebas automatizadas que redujeron los incidentes en producción a la mitad.",
			},
		},
	},
	Education: []Education{
		{
			School: "Universidad Politécnica de Madrid",
			Degree: "Máster en Ingeniería del Software",
			Start:  "2013",
			End:    "2015",
		},
		{
			School: "Universidad de Granada",
			Degree: "Grado en Ingeniería Informática",
			Start:  "2009",
			End:    "2013",
		},
	},
	Skills: []string{
		"Go",
		"TypeScript",
		"PostgreSQL",
		"Kubernetes",
		"AWS",
		"Arquitectura de software",
		"Liderazgo técnico",
		"CI/CD",
	},
	Languages: []string{
		"Español (nativo)",
		"Inglés (C1)",
		"Portugués (B1)",
	},
}

// Sample returns a copy of the built-in sample record.
func Sample() ResumeRecord {
	return sample.Clone()
}
