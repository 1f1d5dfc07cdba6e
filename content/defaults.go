package content

const accent = "from-sky-500 to-blue-500"

// Default returns the built-in portfolio. Each call returns a fresh copy.
func Default() Portfolio {
	p := Portfolio{
		Profile: Profile{
			FirstName: "Vansh",
			LastName:  "Bhatnagar",
			Title:     "AI/ML Engineer & Developer",
			Tagline:   "Crafting intelligent systems with expertise in **PyTorch**, **TensorFlow**, and **cloud technologies**.",
			Roles:     []string{"AI/ML Engineer", "GenAI Developer", "System Architect", "Tech Innovator"},
			About: []string{
				"I'm a passionate **AI/ML Engineer** and **GenAI Developer** dedicated to building innovative solutions that leverage cutting-edge artificial intelligence and modern web technologies.",
				"I specialize in developing AI systems and scalable backends, with extensive experience in **PyTorch** and **TensorFlow** for building and fine-tuning ML models. My expertise spans neural networks, retrieval-augmented generation, and generative AI applications.",
				"From designing end-to-end machine learning pipelines to crafting high-performance distributed systems in the cloud, I bring a comprehensive approach to solving complex technical challenges with elegant, scalable solutions.",
			},
			Summary:    "Full-stack developer and machine learning engineer specializing in AI systems and scalable backends.",
			Avatar:     "/public/image.jpg",
			ResumePath: "Resume-VANSH-BHATNAGAR.pdf",
			Email:      "vanshbhatnagar41104@gmail.com",
			Location:   "India",
		},
		Highlights: []Highlight{
			{Icon: "brain", Title: "Machine Learning & GenAI Developer", Description: "Neural networks, retrieval-augmented generation and generative AI applications."},
			{Icon: "code", Title: "Scalable Backends", Description: "End-to-end ML pipelines and high-performance distributed systems in the cloud."},
		},
		Skills: []SkillCategory{
			{Title: "Machine Learning", Icon: "brain", Color: accent, Skills: []string{"Scikit-learn", "XGBoost", "CatBoost", "LightGBM", "Random Forest", "Support Vector Machines"}},
			{Title: "Deep Learning & AI", Icon: "brain", Color: accent, Skills: []string{"Neural Networks", "Deep Neural Networks", "Recurrent Neural Networks", "Convolutional Neural Networks", "Transformers", "GANs"}},
			{Title: "AI Applications", Icon: "brain", Color: accent, Skills: []string{"Natural Language Processing", "Computer Vision", "Speech Recognition", "Reinforcement Learning", "MLOps", "Model Deployment", "RAG"}},
			{Title: "Backend Development", Icon: "code", Color: accent, Skills: []string{"Django", "Flask", "FastAPI", "GraphQL", "WebRTC Integration", "REST APIs"}},
			{Title: "Database Management", Icon: "database", Color: accent, Skills: []string{"MongoDB", "PostgreSQL", "MySQL", "SQLServer", "pgAdmin", "Lucidchart", "ER/Studio"}},
			{Title: "Cloud & Infrastructure", Icon: "cloud", Color: accent, Skills: []string{"AWS", "GCP", "Azure", "Terraform", "Cloud Security", "Serverless", "Linux"}},
			{Title: "DevOps & Automation", Icon: "git-branch", Color: accent, Skills: []string{"Docker", "Kubernetes", "Jenkins", "Git", "CI/CD"}},
			{Title: "Testing", Icon: "test-tube", Color: accent, Skills: []string{"Selenium", "Pytest", "API Testing"}},
		},
		Experience: []Experience{
			{
				Title: "AI/ML Intern", Company: "NJR I3 Labs Pvt. Ltd", Period: "Apr 2025 – July 2025", Icon: "briefcase", Gradient: accent,
				Achievements: []string{
					"Developed interactive 3D learning interface using Three.js that increased user engagement by 35%. Improved knowledge retention rates by 20% through immersive visualization of complex educational concepts.",
					"Implemented AI-driven content personalization algorithms with Gemini AI, achieving 85% recommendation accuracy. Reduced average learning completion time by 30% through intelligent learning path optimization.",
				},
			},
			{
				Title: "AI/ML Intern", Company: "ShadowFox Technologies", Period: "Aug 2024 - Sep 2024", Icon: "briefcase", Gradient: accent,
				Achievements: []string{
					"Machine learning algorithms were used to improve application performance, resulting in 25% reduction processing time and 10% improvement in accuracy.",
					"The integration of the OpenAI API in the platform played a key role in increasing user engagement by 35% and satisfaction by 70% for the chatbot system.",
				},
			},
			{
				Title: "Full Stack Intern", Company: "CodeAlpha", Period: "Jul 2024 - Aug 2024", Icon: "code", Gradient: accent,
				Achievements: []string{
					"Designed user-friendly mobile applications that combine form data with geo-tagging, giving 40% faster submissions and 15% fewer errors. Used Nginx for server maintenance and Gradle to simplify the build process.",
					"Adopted Docker containers for deployments, cutting deployment times by 50% and improving the stability and scalability of the web applications.",
				},
			},
			{
				Title: "Cloud Computing Intern", Company: "Acmegrade", Period: "Nov 2023 - Feb 2024", Icon: "trending-up", Gradient: accent,
				Achievements: []string{
					"Conducted cloud computing trend analysis for AWS, Azure, and GCP to identify the most appropriate market opportunities.",
					"Applied Docker containerization technology in the existing cloud configuration which improved the resource utilisation time by 40%.",
					"Collaborated with cross-functional teams in debugging and resolving technical issues with respect to cloud computing platforms, achieving a 20% boost in system uptime.",
				},
			},
		},
		Projects: []Project{
			{
				Title:       "SaleSpeak - A Conversational Agent",
				Description: "A conversational agent that helps users make better decisions while buying products online through natural voice interactions and intelligent product recommendations.",
				Image:       "/public/7.png",
				Tags:        []string{"Retrieval Augmented Generation", "Conversational AI", "LangChain", "Groq", "Web Scraping"},
				GitHub:      "https://github.com/Vansh41104/SaleSpeak",
				Demo:        "https://www.youtube.com/watch?v=VSc-MrRbV2U",
				Icon:        "shopping-bag", Gradient: accent,
			},
			{
				Title:       "AI-Tutor",
				Description: "An educational platform that scrapes learning resources with LangChain, processes them with Gemini AI, and delivers personalized learning through an interactive 3-D model built with Three.js.",
				Image:       "/public/8.png",
				Tags:        []string{"Gemini", "Educational AI", "Python", "3-D Learning", "ThreeJS", "Web Scraping"},
				Demo:        "https://aitutor.mlprojects.tech/",
				Icon:        "school", Gradient: accent,
			},
			{
				Title:       "LangGraph CyberSecurity Agent",
				Description: "A multi-agent cybersecurity tool built on LangGraph that runs vulnerability scans with Nmap, Gobuster, ffuf and SQLMap in under two minutes, with real-time monitoring, reporting, remediation and a Streamlit configuration UI.",
				Image:       "/public/6.jpg",
				Tags:        []string{"LangGraph", "CyberSecurity", "Groq", "Nmap", "GoBuster"},
				GitHub:      "https://github.com/Vansh41104/LangGraph-CyberSecurity-Agent",
				Demo:        "https://langgraph-cybersecurity-agent.onrender.com",
				Icon:        "message-square", Gradient: accent,
			},
			{
				Title:       "MCHN Monitoring App",
				Description: "A React Native child vaccination tracking system with Google Maps geo-tagging used across Udaipur. It improved data accuracy by 45% and vaccination campaign effectiveness by 60%.",
				Image:       "/public/5.png",
				Tags:        []string{"React Native", "ExpressJS", "Android", "Gradle", "Linux"},
				Demo:        "https://github.com/Vansh41104/",
				Icon:        "fingerprint", Gradient: accent,
			},
			{
				Title:       "VOCE",
				Description: "A conversational agent that turns travelers into local adventurers through voice interactions and travel recommendations, reachable with a simple phone call and no app or internet connection.",
				Image:       "/public/9.png",
				Tags:        []string{"Retrieval Augmented Generation", "Conversational AI", "LangChain", "Groq", "Web Scraping"},
				GitHub:      "https://github.com/HACKTHEMM/VOCE_Team_HackThem_Submission",
				Demo:        "https://www.youtube.com/watch?v=cCTfVueSOMY",
				Icon:        "shopping-bag", Gradient: accent,
			},
			{
				Title:       "CivicTrack",
				Description: "Location-based platform to report and monitor civic issues like potholes, garbage, and water leaks with status tracking, moderation, and analytics.",
				Image:       "/public/11.png",
				Tags:        []string{"nextJS", "Python", "FastAPI", "RestAPI", "PostgreSQL", "LeafletMaps"},
				GitHub:      "https://github.com/HACKTHEMM/OdooXCGC_TEAM_HACKTHEM",
				Demo:        "https://www.youtube.com/watch?v=W_R5oUesMf0",
				Icon:        "app-window", Gradient: accent,
			},
			{
				Title:       "Stackit",
				Description: "A full-stack question and answer platform built with Next.js, Node.js, Express, and PostgreSQL for asking questions, sharing knowledge and building a collaborative community.",
				Image:       "/public/10.png",
				Tags:        []string{"NextJS", "NodeJS", "Express", "PostgreSQL", "TailwindCSS", "Clerk"},
				GitHub:      "https://github.com/HACKTHEMM/StackIt",
				Demo:        "https://github.com/HACKTHEMM/StackIt",
				Icon:        "app-window", Gradient: accent,
			},
			{
				Title:       "News Webpage Semantic Analysis Tool",
				Description: "An NLP web app built with Python, spaCy and TextBlob that extracts entities, sentiment and keywords from news articles, with Groq-generated summaries and a Gradio interface.",
				Image:       "/public/1.png",
				Tags:        []string{"NLP", "Python", "spaCy", "TextBlob", "Groq AI", "Gradio"},
				GitHub:      "https://github.com/Vansh41104/News_Semantic_Summarizer",
				Demo:        "https://news-semantic-summarizer.onrender.com",
				Icon:        "newspaper", Gradient: accent,
			},
			{
				Title:       "AI Based Grass and Milk Production Predictor",
				Description: "A computer vision system that scans farm photos to rate grass quality and forecast yield from colour, texture and morphology features.",
				Image:       "/public/2.png",
				Tags:        []string{"Computer Vision", "Machine Learning", "Image Processing", "Python", "PyTorch"},
				GitHub:      "https://github.com/Vansh41104/FarmML_Project",
				Demo:        "https://github.com/Vansh41104/FarmML_Project",
				Icon:        "activity", Gradient: accent,
			},
			{
				Title:       "AI Based Disease Detector",
				Description: "A deep learning diagnostic system that identifies lung cancer, tuberculosis and pneumonia from chest X-rays using convolutional neural networks.",
				Image:       "/public/3.jpeg",
				Tags:        []string{"Deep Learning", "CNN", "Medical Imaging", "TensorFlow", "Healthcare AI"},
				GitHub:      "https://github.com/Vansh41104/AI-Based-Disease-Detector",
				Demo:        "https://github.com/Vansh41104/AI-Based-Disease-Detector",
				Icon:        "brain", Gradient: accent,
			},
			{
				Title:       "Customer Feedback Chatbot",
				Description: "An AI-powered customer feedback analysis chatbot that replaces manual sentiment analysis with actionable insights, raising team productivity by 36%.",
				Image:       "/public/4.png",
				Tags:        []string{"NLP", "Chatbot", "Sentiment Analysis", "Python", "Embeddings", "Re-Rankers"},
				GitHub:      "https://github.com/Vansh41104/Customer_Feedback_Chatbot",
				Demo:        "https://github.com/Vansh41104/Customer_Feedback_Chatbot",
				Icon:        "app-window", Gradient: accent,
			},
			{
				Title:       "Dockerized-Notes-App",
				Description: "A containerized note-taking application with rich text editing and Markdown support, built for easy deployment and scaling.",
				Image:       "/public/4.png",
				Tags:        []string{"Docker", "React", "Django", "Sqlite", "TailwindCSS", "Gunicorn"},
				GitHub:      "https://github.com/Vansh41104/Dockerized-Notes-App",
				Demo:        "https://github.com/Vansh41104/Dockerized-Notes-App",
				Icon:        "brain-circuit", Gradient: accent,
			},
		},
		Achievements: []Achievement{
			{Title: "Finalist at Matrix Protocol AI Hackathon", Description: []string{
				"Achieved 3-second response latency despite real-time data retrieval and intent classification",
				"Implemented RAG architecture with multi-format document embedding for optimized query responses",
			}},
			{Title: "Letter of Recognition from WHO", Description: []string{
				"Developed an interactive monitoring platform with geo-tagging for un-vaccinated children.",
				"Created a comprehensive monitoring system to track day-to-day vaccination drives.",
			}},
			{Title: "Finalist at Hack-A-Tone Hackathon", Description: []string{
				"Achieved 1.5-second response latency despite real-time data retrieval and intent classification",
				"Implemented web scraping with multi-format document embedding for optimized query responses",
			}},
			{Title: "Qualified to the National Round of WCHL (World Computer Hacker League)", Description: []string{
				"Achieved 2-second response latency despite real-time data retrieval and intent classification",
				"Implemented RAG architecture with multi-format document embedding for optimized query responses",
			}},
			{Title: "Runner Up in Code Red 4.0 Hackathon", Description: []string{
				"Designed a CNN model that analyses X-rays and CT scans from over 10,000 images to predict potential diseases",
				"Contributed towards making advanced medical diagnostics accessible to deprived rural societies.",
			}},
			{Title: "Winners SIH 2023 (Internal Round)", Description: []string{
				"Developed an interactive dashboard for monitoring and plotting air and water quality parameters efficiently.",
				"Created a comprehensive monitoring system to track environmental quality indices in near-real-time.",
			}},
		},
		Contact: []ContactInfo{
			{Icon: "mail", Label: "Email", Value: "vanshbhatnagar41104@gmail.com", Href: "mailto:vanshbhatnagar41104@gmail.com", Gradient: "from-blue-500 to-cyan-500"},
			{Icon: "phone", Label: "Phone", Value: "+91 98765 43210", Href: "tel:+919876543210", Gradient: "from-green-500 to-emerald-500"},
			{Icon: "map-pin", Label: "Location", Value: "India", Href: "#", Gradient: "from-red-500 to-pink-500"},
		},
		Social: []SocialLink{
			{Icon: "github", Label: "GitHub", Href: "https://github.com/Vansh41104", Gradient: "from-gray-600 to-gray-800"},
			{Icon: "linkedin", Label: "LinkedIn", Href: "https://www.linkedin.com/in/vansh-bhatnagar-66465225b/", Gradient: "from-blue-600 to-blue-800"},
		},
		Nav: []NavLink{
			{Name: "About", Href: "about"},
			{Name: "Skills", Href: "skills"},
			{Name: "Experience", Href: "experience"},
			{Name: "Projects", Href: "projects"},
			{Name: "Achievements", Href: "achievements"},
			{Name: "Contact", Href: "contact"},
		},
	}
	p.Normalize()
	return p
}
