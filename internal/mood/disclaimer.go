package mood

// Disclaimer is shown once, until the user acknowledges it.
const Disclaimer = `moodr is for self-reflection and mood tracking only. It is not a medical
device and does not provide diagnosis, treatment, or professional mental
health services.

If you are experiencing a crisis or feel you may be in danger, please seek
immediate help from local emergency services or a qualified professional.`
