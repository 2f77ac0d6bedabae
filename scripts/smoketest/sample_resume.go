package main

const sampleResume = `JOHN DOE
Software Developer

Contact Information:
Email: john.doe@example.com
Phone: (555) 123-4567
Location: San Francisco, CA

Professional Summary:
Experienced software developer with 5+ years in web development and cloud technologies.

Work Experience:
Software Engineer at Tech Corp
2021 - Present
- Developed React applications
- Built REST APIs using Node.js
- Deployed applications on AWS
Technologies: React, Node.js, AWS, Docker

Junior Developer at StartupXYZ
2019 - 2021
- Created responsive web interfaces
- Collaborated with design team
Technologies: JavaScript, HTML, CSS

Education:
Bachelor of Science in Computer Science
University of California, Berkeley
2015 - 2019

Skills:
Programming Languages: JavaScript, Python, Java
Frameworks: React, Express, Django
Databases: MongoDB, PostgreSQL
Cloud: AWS, Docker
`
