package skilltree

// seedDomain pairs a domain name with its modules in declaration order.
type seedDomain struct {
	domain  string
	modules []Module
}

func init() {
	f = buildForest(seedDomains())
	if err := validateForest(f); err != nil {
		panic("skilltree: invalid seed data: " + err.Error())
	}
}

// seedDomains is the static skill forest. Enumeration order is part of the
// contract: goal lookup returns the first module (by domain, then module
// order) teaching the goal skill.
func seedDomains() []seedDomain {
	return []seedDomain{
		{
			domain: "Data Science",
			modules: []Module{
				{
					Name:          "Python Fundamentals",
					Skills:        []string{"Python", "Programming Basics"},
					Prerequisites: []string{},
					Next:          []string{"Data Analysis Basics", "Statistics Fundamentals"},
				},
				{
					Name:          "Statistics Fundamentals",
					Skills:        []string{"Statistics", "Probability"},
					Prerequisites: []string{},
					Next:          []string{"Data Analysis Basics"},
				},
				{
					Name:          "Data Analysis Basics",
					Skills:        []string{"Data Analysis", "Pandas", "NumPy"},
					Prerequisites: []string{"Python Fundamentals"},
					Next:          []string{"Data Visualization", "Machine Learning Basics"},
				},
				{
					Name:          "Data Visualization",
					Skills:        []string{"Data Visualization", "Matplotlib", "Seaborn"},
					Prerequisites: []string{"Data Analysis Basics"},
					Next:          []string{"Machine Learning Basics", "Advanced Analytics"},
				},
				{
					Name:          "Machine Learning Basics",
					Skills:        []string{"Machine Learning", "Scikit-learn"},
					Prerequisites: []string{"Data Analysis Basics", "Statistics Fundamentals"},
					Next:          []string{"Deep Learning", "MLOps", "Advanced ML"},
				},
				{
					Name:          "Deep Learning",
					Skills:        []string{"Deep Learning", "Neural Networks", "TensorFlow", "PyTorch"},
					Prerequisites: []string{"Machine Learning Basics"},
					Next:          []string{"Computer Vision", "NLP", "ML Engineering"},
				},
				{
					Name:          "MLOps",
					Skills:        []string{"MLOps", "Model Deployment", "Docker", "Cloud Platforms"},
					Prerequisites: []string{"Machine Learning Basics"},
					Next:          []string{"ML Engineering", "Production ML"},
				},
			},
		},
		{
			domain: "Web Development",
			modules: []Module{
				{
					Name:          "HTML/CSS Fundamentals",
					Skills:        []string{"HTML", "CSS", "Web Design"},
					Prerequisites: []string{},
					Next:          []string{"JavaScript Basics", "Responsive Design"},
				},
				{
					Name:          "JavaScript Basics",
					Skills:        []string{"JavaScript", "DOM Manipulation"},
					Prerequisites: []string{"HTML/CSS Fundamentals"},
					Next:          []string{"Frontend Frameworks", "Backend Development"},
				},
				{
					Name:          "Frontend Frameworks",
					Skills:        []string{"React", "Vue.js", "Angular"},
					Prerequisites: []string{"JavaScript Basics"},
					Next:          []string{"Full Stack Development", "Advanced Frontend"},
				},
				{
					Name:          "Backend Development",
					Skills:        []string{"Node.js", "Python Flask", "APIs"},
					Prerequisites: []string{"JavaScript Basics"},
					Next:          []string{"Database Design", "Full Stack Development"},
				},
				{
					Name:          "Database Design",
					Skills:        []string{"SQL", "Database Design", "MongoDB"},
					Prerequisites: []string{"Backend Development"},
					Next:          []string{"Full Stack Development", "DevOps"},
				},
				{
					Name:          "Full Stack Development",
					Skills:        []string{"Full Stack", "System Architecture"},
					Prerequisites: []string{"Frontend Frameworks", "Backend Development", "Database Design"},
					Next:          []string{"DevOps", "Microservices"},
				},
				{
					Name:          "DevOps",
					Skills:        []string{"DevOps", "CI/CD", "Docker", "Kubernetes"},
					Prerequisites: []string{"Full Stack Development"},
					Next:          []string{"Cloud Architecture", "Site Reliability"},
				},
			},
		},
		{
			domain: "Cloud Computing",
			modules: []Module{
				{
					Name:          "Cloud Basics",
					Skills:        []string{"Cloud Computing", "AWS Basics", "Azure Basics"},
					Prerequisites: []string{},
					Next:          []string{"Infrastructure as Code", "Cloud Security"},
				},
				{
					Name:          "Infrastructure as Code",
					Skills:        []string{"Terraform", "CloudFormation", "Infrastructure"},
					Prerequisites: []string{"Cloud Basics"},
					Next:          []string{"Container Orchestration", "Cloud Architecture"},
				},
				{
					Name:          "Container Orchestration",
					Skills:        []string{"Docker", "Kubernetes", "Container Management"},
					Prerequisites: []string{"Cloud Basics"},
					Next:          []string{"Microservices", "Service Mesh"},
				},
				{
					Name:          "Cloud Security",
					Skills:        []string{"Cloud Security", "IAM", "Security Best Practices"},
					Prerequisites: []string{"Cloud Basics"},
					Next:          []string{"Advanced Security", "Compliance"},
				},
			},
		},
	}
}
