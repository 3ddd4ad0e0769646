package metrics

const Namespace = "growi_editor"
