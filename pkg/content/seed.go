package content

// Seed returns the template document written when no content file exists.
func Seed() (doc Document) {
	doc = Document{
		Name: "John Doe",
		ContactInfo: ContactInfo{
			Phone:       "+1 555-0123-456",
			Email:       "john.doe@example.com",
			LinkedInURL: "https://www.linkedin.com/in/johndoe-fake/",
			GitHubURL:   "https://github.com/johndoe-fake",
		},
		Summary: []TaggedText{
			{
				Text: "<b>Senior Full-Stack Engineer</b> with 8+ years of experience building scalable web applications. " +
					"Expert in modern JavaScript ecosystems (React, Node.js) and cloud-native architectures. " +
					"Proven ability to lead teams, design RESTful APIs, and optimize frontend performance.",
				TargetAudiences: []string{"fullstack", "frontend", "backend"},
			},
			{
				Text: "<b>DevOps & Site Reliability Engineer</b> passionate about automation and infrastructure as code. " +
					"Specialized in Kubernetes, AWS, and CI/CD pipelines. Experienced in scaling high-traffic systems " +
					"and ensuring 99.99% availability through robust monitoring and security practices.",
				TargetAudiences: []string{"devops", "backend"},
			},
		},
		Skills: []TaggedText{
			{
				Text: "<b>Languages:</b> JavaScript (ES6+), TypeScript, Python, Go, Bash<br/>" +
					"<b>Frontend:</b> React, Next.js, Redux, Tailwind CSS, HTML5/CSS3<br/>" +
					"<b>Backend:</b> Node.js, Express.js, Django, PostgreSQL, Redis, MongoDB<br/>" +
					"<b>DevOps:</b> Docker, Kubernetes, AWS, Terraform, Jenkins, GitHub Actions, Prometheus",
				TargetAudiences: []string{"fullstack", "backend", "devops"},
			},
			{
				Text: "<b>Languages:</b> JavaScript, TypeScript, HTML5, CSS3<br/>" +
					"<b>Frontend:</b> React, Vue.js, Next.js, Webpack, Babel, Sass, Jest, Cypress<br/>" +
					"<b>UI/UX:</b> Figma, Material-UI, Styled-Components, Accessibility (WCAG)",
				TargetAudiences: []string{"frontend"},
			},
		},
		Experience: []Job{
			{
				Title:   "Senior Software Engineer",
				Company: "TechNova Solutions",
				Dates:   "Jan 2022 – Present",
				Intro:   "Lead developer for the company's flagship e-commerce product, managing a team of 5 engineers.",
				Bullets: []TaggedText{
					{
						Text:            "Architected and built a microservices-based e-commerce platform using Node.js and Go, handling 10k+ concurrent users.",
						TargetAudiences: []string{"backend", "fullstack"},
					},
					{
						Text:            "Led the migration of the legacy monolithic frontend to a modern Next.js application, improving Core Web Vitals by 40%.",
						TargetAudiences: []string{"frontend", "fullstack"},
					},
					{
						Text:            "Implemented a fully automated CI/CD pipeline using GitHub Actions and ArgoCD, reducing deployment time from 1 hour to 5 minutes.",
						TargetAudiences: []string{"devops", "backend"},
					},
					{
						Text:            "Designed and deployed a serverless data processing pipeline on AWS Lambda to handle real-time analytics.",
						TargetAudiences: []string{"backend", "devops", "fullstack"},
					},
				},
			},
			{
				Title:   "Full Stack Developer",
				Company: "Orbit Systems",
				Dates:   "Jun 2019 – Dec 2021",
				Bullets: []TaggedText{
					{
						Text:            "Developed responsive, interactive user interfaces using React and Redux, ensuring cross-browser compatibility.",
						TargetAudiences: []string{"frontend", "fullstack"},
					},
					{
						Text:            "Built and maintained RESTful APIs using Python (Django) and integrated with PostgreSQL databases.",
						TargetAudiences: []string{"backend", "fullstack"},
					},
					{
						Text:            "Containerized application services using Docker and orchestrated deployments on an on-premise Kubernetes cluster.",
						TargetAudiences: []string{"devops", "backend"},
					},
				},
			},
			{
				Title:   "Junior Web Developer",
				Company: "Creative Code Studio",
				Dates:   "Aug 2017 – May 2019",
				Bullets: []TaggedText{
					{
						Text:            "Collaborated with designers to implement pixel-perfect landing pages using HTML5, CSS3, and JavaScript.",
						TargetAudiences: []string{"frontend", "fullstack"},
					},
					{
						Text:            "Assisted in backend development tasks using PHP (Laravel) and MySQL for client CMS projects.",
						TargetAudiences: []string{"backend", "fullstack"},
					},
					{
						Text:            "Automated server provisioning and configuration management using Ansible scripts.",
						TargetAudiences: []string{"devops", "backend"},
					},
				},
			},
		},
		Education: "<b>B.Sc. in Computer Science</b>, University of Technology · 2013–2017",
		Languages: "English – Native | Spanish – Fluent",
	}
	return doc
}
