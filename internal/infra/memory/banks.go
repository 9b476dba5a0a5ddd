package memory

import "quiz-mastery/internal/domain"

// BuiltinCategories returns the bundled Docker & YAML question banks, used
// when no external quiz source is configured.
func BuiltinCategories() map[string][]domain.Quiz {
	return map[string][]domain.Quiz{
		"beginner": {
			{
				ID:    "yaml-basics",
				Title: "YAML Basics",
				Questions: []domain.Question{
					{
						Text:        "What does YAML stand for?",
						Options:     []string{"Yet Another Markup Language", "YAML Ain't Markup Language", "Young Adult Modern Language", "Youthful Agile Markup Language"},
						Correct:     1,
						Explanation: "YAML is a recursive acronym that stands for 'YAML Ain't Markup Language'.",
					},
					{
						Text:        "Which character is used for comments in YAML?",
						Options:     []string{"//", "#", "/*", "--"},
						Correct:     1,
						Explanation: "YAML uses the # character for comments, just like many shell scripting languages.",
					},
				},
			},
			{
				ID:    "docker-fundamentals",
				Title: "Docker Fundamentals",
				Questions: []domain.Question{
					{
						Text:        "What is the main purpose of Docker?",
						Options:     []string{"Virtual machines", "Container orchestration", "Application containerization", "Database management"},
						Correct:     2,
						Explanation: "Docker's main purpose is application containerization - packaging applications with their dependencies.",
					},
				},
			},
			{
				ID:    "containers-101",
				Title: "Containers 101",
				Questions: []domain.Question{
					{
						Text:        "What is a Docker image?",
						Options:     []string{"A running container", "A blueprint for containers", "A network configuration", "A volume mount"},
						Correct:     1,
						Explanation: "A Docker image is a blueprint or template used to create containers.",
					},
				},
			},
		},
		"intermediate": {
			{
				ID:    "multi-container",
				Title: "Multi-Container Applications",
				Questions: []domain.Question{
					{
						Text:        "What tool is commonly used to orchestrate multiple Docker containers?",
						Options:     []string{"Docker Swarm", "Docker Compose", "Docker Machine", "Docker Network"},
						Correct:     1,
						Explanation: "Docker Compose is the standard tool for defining and running multi-container Docker applications.",
					},
				},
			},
			{
				ID:    "networking",
				Title: "Docker Networking",
				Questions: []domain.Question{
					{
						Text:        "What is the default network driver in Docker?",
						Options:     []string{"host", "bridge", "overlay", "macvlan"},
						Correct:     1,
						Explanation: "The bridge network driver is the default network driver for standalone containers.",
					},
				},
			},
			{
				ID:    "volumes-storage",
				Title: "Volumes & Storage",
				Questions: []domain.Question{
					{
						Text:        "What is the recommended way to persist data in Docker?",
						Options:     []string{"Bind mounts", "Volumes", "tmpfs mounts", "Copy files"},
						Correct:     1,
						Explanation: "Docker volumes are the recommended way to persist data as they are managed by Docker and work across platforms.",
					},
				},
			},
		},
		"advanced": {
			{
				ID:    "production-deployment",
				Title: "Production Deployment",
				Questions: []domain.Question{
					{
						Text:        "What should you avoid in production Docker images?",
						Options:     []string{"Multi-stage builds", "Running as root user", "Health checks", "Resource limits"},
						Correct:     1,
						Explanation: "Running containers as root user is a security risk and should be avoided in production.",
					},
				},
			},
			{
				ID:    "security-hardening",
				Title: "Security & Hardening",
				Questions: []domain.Question{
					{
						Text:        "What tool can scan Docker images for vulnerabilities?",
						Options:     []string{"Docker Bench", "Trivy", "Hadolint", "All of the above"},
						Correct:     3,
						Explanation: "All of these tools can help with Docker security - Trivy for vulnerability scanning, Hadolint for Dockerfile linting, and Docker Bench for security benchmarks.",
					},
				},
			},
			{
				ID:    "performance-optimization",
				Title: "Performance Optimization",
				Questions: []domain.Question{
					{
						Text:        "What is the benefit of multi-stage Docker builds?",
						Options:     []string{"Faster builds", "Smaller images", "Better security", "All of the above"},
						Correct:     3,
						Explanation: "Multi-stage builds provide faster builds, smaller final images, and better security by excluding build tools from the final image.",
					},
				},
			},
		},
		"expert": {
			{
				ID:    "kubernetes-migration",
				Title: "Kubernetes Migration",
				Questions: []domain.Question{
					{
						Text:        "What Kubernetes object is equivalent to docker-compose.yml?",
						Options:     []string{"Pod", "Deployment", "Service", "ConfigMap"},
						Correct:     1,
						Explanation: "A Deployment in Kubernetes manages the deployment and scaling of applications, similar to docker-compose.yml.",
					},
				},
			},
			{
				ID:    "cicd-integration",
				Title: "CI/CD Integration",
				Questions: []domain.Question{
					{
						Text:        "What is the benefit of using Docker in CI/CD pipelines?",
						Options:     []string{"Consistent environments", "Faster deployments", "Better testing", "All of the above"},
						Correct:     3,
						Explanation: "Docker provides consistent environments, enables faster deployments, and improves testing reliability in CI/CD pipelines.",
					},
				},
			},
			{
				ID:    "microservices-architecture",
				Title: "Microservices Architecture",
				Questions: []domain.Question{
					{
						Text:        "What pattern is commonly used for service-to-service communication?",
						Options:     []string{"Direct HTTP calls", "Message queues", "Service mesh", "All of the above"},
						Correct:     3,
						Explanation: "Microservices can communicate via direct HTTP calls, message queues, or through a service mesh, depending on requirements.",
					},
				},
			},
		},
	}
}

// WeeklyChallenge returns the fixed bonus quiz behind the weekly challenge
// menu entry.
func WeeklyChallenge() domain.Quiz {
	return domain.Quiz{
		ID:    "weekly-challenge",
		Title: "Weekly Challenge: Secure a Docker Application",
		Questions: []domain.Question{
			{
				Text:        "What's wrong with 'USER root' in a production Dockerfile?",
				Options:     []string{"Nothing", "Security risk", "Performance issue", "Compatibility problem"},
				Correct:     1,
				Explanation: "Running as root gives unnecessary privileges and is a security risk.",
			},
		},
	}
}
